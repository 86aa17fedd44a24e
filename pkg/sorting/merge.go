package sorting

import (
	"cmp"

	"algotrace/pkg/step"
	"algotrace/pkg/trace"
)

// Merge traces merge sort over the natural order of T.
func Merge[T cmp.Ordered](seq []T) trace.Trace {
	return MergeFunc(seq, cmp.Compare[T])
}

// MergeFunc is a stable top-down merge sort. Equal elements keep their
// relative order because ties are taken from the left run.
func MergeFunc[T any](seq []T, compare CompareFunc[T]) trace.Trace {
	m := merger[T]{
		a:       clone(seq),
		compare: compare,
		tb:      trace.NewBuilder(len(seq) * 4),
	}
	m.sort(0, len(m.a))
	return m.tb.Trace()
}

type merger[T any] struct {
	a       []T
	compare CompareFunc[T]
	tb      *trace.Builder
	buf     []T
}

// sort handles the half-open range [left, right).
func (m *merger[T]) sort(left, right int) {
	if right-left <= 1 {
		return
	}

	mid := (left + right) / 2
	m.tb.Add(step.Split{Start: left, Mid: mid, End: right})

	m.sort(left, mid)
	m.sort(mid, right)
	m.merge(left, mid, right)
}

func (m *merger[T]) merge(left, mid, right int) {
	merged := m.buf[:0]
	i, j := left, mid

	for i < mid && j < right {
		m.tb.Add(step.Compare{I: i, J: j})
		if m.compare(m.a[i], m.a[j]) <= 0 {
			merged = append(merged, m.a[i])
			i++
		} else {
			merged = append(merged, m.a[j])
			j++
		}
	}
	merged = append(merged, m.a[i:mid]...)
	merged = append(merged, m.a[j:right]...)

	for k, v := range merged {
		m.a[left+k] = v
		m.tb.Add(step.Overwrite[T]{Index: left + k, Value: v})
	}
	m.buf = merged
}
