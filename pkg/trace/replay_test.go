package trace

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algotrace/pkg/step"
	"algotrace/pkg/traceerrors"
)

func TestReplay_DoesNotTouchState(t *testing.T) {
	state := []int{3, 2, 1}
	got, err := Replay(state, Trace{
		step.Swap{I: 0, J: 2},
		step.Compare{I: 0, J: 1},
		step.Overwrite[int]{Index: 1, Value: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 9, 3}, got)
	assert.Equal(t, []int{3, 2, 1}, state)
}

func TestReplay_ShiftAndPlace(t *testing.T) {
	// insertion of key 1 into [5, 1]
	got, err := Replay([]int{5, 1}, Trace{
		step.Key[int]{I: 1, Value: 1},
		step.Compare{I: 0, J: 1},
		step.Shift{From: 0, To: 1},
		step.Place[int]{Index: 0, Value: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, got)
}

func TestReplay_StructureSteps(t *testing.T) {
	got, err := Replay([]string{"b"}, Trace{
		step.Insert[string]{Index: 0, Value: "a"},
		step.Append[string]{Value: "c"},
		step.Delete[string]{Index: 1, Value: "b"},
		step.PopLeft[string]{Value: "a"},
		step.Append[string]{Value: "d"},
		step.Pop[string]{Value: "d"},
		step.Top{Index: nil},
		step.Noop{Reason: step.ReasonEmpty},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got)
}

func TestReplay_Errors(t *testing.T) {
	_, err := Replay([]int{1}, Trace{step.Swap{I: 0, J: 1}})
	assert.ErrorIs(t, err, traceerrors.ErrIndexOutOfRange)

	_, err = Replay([]int{1}, Trace{step.Insert[int]{Index: 3, Value: 1}})
	assert.ErrorIs(t, err, traceerrors.ErrIndexOutOfRange)

	_, err = Replay([]int{}, Trace{step.Pop[int]{Value: 1}})
	assert.ErrorIs(t, err, traceerrors.ErrEmptyStructure)

	_, err = Replay([]int{}, Trace{step.Delete[int]{Index: 0}})
	assert.ErrorIs(t, err, traceerrors.ErrEmptyStructure)

	// element type mismatch
	_, err = Replay([]string{"a"}, Trace{step.Overwrite[int]{Index: 0, Value: 1}})
	require.ErrorIs(t, err, traceerrors.ErrUnknownStep)
	assert.Contains(t, err.Error(), "step 0 (overwrite)")
}

func TestReplayEach_Intermediate(t *testing.T) {
	tr := Trace{
		step.Swap{I: 0, J: 1},
		step.Compare{I: 1, J: 2},
		step.Swap{I: 1, J: 2},
	}

	var states [][]int
	err := ReplayEach([]int{3, 1, 2}, tr, func(i int, s step.Step, cur []int) bool {
		states = append(states, append([]int(nil), cur...))
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 3, 2}, {1, 3, 2}, {1, 2, 3}}, states)

	calls := 0
	err = ReplayEach([]int{3, 1, 2}, tr, func(int, step.Step, []int) bool {
		calls++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDecode_RoundTrip(t *testing.T) {
	state := []any{1.0, 2.0}
	tr := Trace{
		step.Highlight{Index: step.At(1)},
		step.Append[any]{Value: 3.0},
		step.Top{Index: step.At(2)},
	}

	data, err := json.Marshal(tr)
	require.NoError(t, err)

	back, err := Decode[any](data)
	require.NoError(t, err)
	assert.Equal(t, tr, back)

	got, err := Replay(state, back)
	require.NoError(t, err)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, got)
}

func TestBuilder(t *testing.T) {
	var b Builder
	assert.NotNil(t, b.Trace())
	assert.Empty(t, b.Trace())

	tb := NewBuilder(-1)
	tb.Add(step.Compare{}, step.Swap{I: 0, J: 1})
	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, map[step.Kind]int{step.KindCompare: 1, step.KindSwap: 1}, Count(tb.Trace()))
}
