package trace

import (
	"fmt"
	"slices"

	"algotrace/pkg/step"
	"algotrace/pkg/traceerrors"
)

// Replay applies tr to a copy of state and returns the result.
// state itself is never modified.
func Replay[T any](state []T, tr Trace) ([]T, error) {
	cur := slices.Clone(state)
	for i, s := range tr {
		next, err := Apply(cur, s)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, s.Kind(), err)
		}
		cur = next
	}
	if cur == nil {
		cur = []T{}
	}
	return cur, nil
}

// ReplayEach replays tr and calls fn after every step with the state as it
// stands after that step. cur is only valid for the duration of the call.
// Returning false from fn stops the replay.
func ReplayEach[T any](state []T, tr Trace, fn func(i int, s step.Step, cur []T) bool) error {
	cur := slices.Clone(state)
	for i, s := range tr {
		next, err := Apply(cur, s)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i, s.Kind(), err)
		}
		cur = next
		if !fn(i, s, cur) {
			return nil
		}
	}
	return nil
}

// Apply performs the replay effect of a single step on cur. The slice may be
// modified in place; callers use the returned slice.
func Apply[T any](cur []T, s step.Step) ([]T, error) {
	switch st := s.(type) {
	case step.Compare, step.Split, step.Pivot, step.Done,
		step.Highlight, step.Front, step.Rear, step.Top, step.Noop:
		return cur, nil
	case step.Key[T]:
		return cur, nil

	case step.Swap:
		if err := checkIndex(st.I, len(cur)); err != nil {
			return nil, err
		}
		if err := checkIndex(st.J, len(cur)); err != nil {
			return nil, err
		}
		cur[st.I], cur[st.J] = cur[st.J], cur[st.I]
		return cur, nil

	case step.Shift:
		if err := checkIndex(st.From, len(cur)); err != nil {
			return nil, err
		}
		if err := checkIndex(st.To, len(cur)); err != nil {
			return nil, err
		}
		cur[st.To] = cur[st.From]
		return cur, nil

	case step.Overwrite[T]:
		if err := checkIndex(st.Index, len(cur)); err != nil {
			return nil, err
		}
		cur[st.Index] = st.Value
		return cur, nil

	case step.Place[T]:
		if err := checkIndex(st.Index, len(cur)); err != nil {
			return nil, err
		}
		cur[st.Index] = st.Value
		return cur, nil

	case step.Insert[T]:
		if st.Index < 0 || st.Index > len(cur) {
			return nil, fmt.Errorf("%w: %d not in [0, %d]", traceerrors.ErrIndexOutOfRange, st.Index, len(cur))
		}
		return slices.Insert(cur, st.Index, st.Value), nil

	case step.Delete[T]:
		if len(cur) == 0 {
			return nil, traceerrors.ErrEmptyStructure
		}
		if err := checkIndex(st.Index, len(cur)); err != nil {
			return nil, err
		}
		return slices.Delete(cur, st.Index, st.Index+1), nil

	case step.Append[T]:
		return append(cur, st.Value), nil

	case step.Pop[T]:
		if len(cur) == 0 {
			return nil, traceerrors.ErrEmptyStructure
		}
		return cur[:len(cur)-1], nil

	case step.PopLeft[T]:
		if len(cur) == 0 {
			return nil, traceerrors.ErrEmptyStructure
		}
		return cur[1:], nil

	default:
		return nil, fmt.Errorf("%w: %T", traceerrors.ErrUnknownStep, s)
	}
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", traceerrors.ErrIndexOutOfRange, i, n)
	}
	return nil
}
