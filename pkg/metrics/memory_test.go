package metrics

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_CounterConcurrent(t *testing.T) {
	m := NewMemory()
	labels := map[string]string{"algorithm": "quick"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncCounter(EngineCalls, labels, 1)
		}()
	}
	wg.Wait()

	v, ok := m.Value(EngineCalls, labels)
	require.True(t, ok)
	assert.Equal(t, 50.0, v)

	_, ok = m.Value(EngineCalls, map[string]string{"algorithm": "merge"})
	assert.False(t, ok)
}

func TestMemory_WriteTextSorted(t *testing.T) {
	m := NewMemory()
	m.IncCounter("b_total", map[string]string{"z": "1", "a": "2"}, 2)
	m.SetGauge("a_gauge", nil, 7)
	m.SetGauge("a_gauge", nil, 3)
	m.ObserveHistogram("c_hist", map[string]string{"k": "v"}, 1.5)
	m.ObserveHistogram("c_hist", map[string]string{"k": "v"}, 2.5)

	var sb strings.Builder
	require.NoError(t, m.WriteText(&sb))

	assert.Equal(t, strings.Join([]string{
		`a_gauge 3`,
		`b_total{a="2",z="1"} 2`,
		`c_hist_sum{k="v"} 4`,
		`c_hist_count{k="v"} 2`,
		``,
	}, "\n"), sb.String())
}
