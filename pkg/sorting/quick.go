package sorting

import (
	"cmp"

	"github.com/zhangyunhao116/fastrand"

	"algotrace/pkg/step"
	"algotrace/pkg/trace"
)

// PivotSource returns a uniformly random integer in [0, n).
type PivotSource func(n int) int

// Quick traces are not reproducible: pivots are drawn from fastrand.
func Quick[T cmp.Ordered](seq []T) trace.Trace {
	return QuickFunc(seq, cmp.Compare[T], fastrand.Intn)
}

// QuickWithSource is Quick with a caller-supplied pivot source.
func QuickWithSource[T cmp.Ordered](seq []T, rnd PivotSource) trace.Trace {
	return QuickFunc(seq, cmp.Compare[T], rnd)
}

// QuickFunc is a Lomuto-partition quick sort with a random pivot.
// Per partition it records Pivot, the Swap moving the pivot to the right
// boundary, a Compare against the pivot for every other element, a Swap for
// every element moved into the less-than region, the Swap placing the pivot
// and Done.
func QuickFunc[T any](seq []T, compare CompareFunc[T], rnd PivotSource) trace.Trace {
	if rnd == nil {
		rnd = fastrand.Intn
	}
	q := quicker[T]{
		a:       clone(seq),
		compare: compare,
		rnd:     rnd,
		tb:      trace.NewBuilder(len(seq) * 4),
	}
	q.sort(0, len(q.a)-1)
	return q.tb.Trace()
}

type quicker[T any] struct {
	a       []T
	compare CompareFunc[T]
	rnd     PivotSource
	tb      *trace.Builder
}

// sort handles the closed range [left, right].
func (q *quicker[T]) sort(left, right int) {
	if left >= right {
		return
	}

	p := q.partition(left, right)
	q.sort(left, p-1)
	q.sort(p+1, right)
}

func (q *quicker[T]) partition(left, right int) int {
	a := q.a

	pivotIndex := left + q.rnd(right-left+1)
	pivot := a[pivotIndex]
	q.tb.Add(step.Pivot{Index: pivotIndex})

	// Lomuto: park the pivot on the right boundary
	a[pivotIndex], a[right] = a[right], a[pivotIndex]
	q.tb.Add(step.Swap{I: pivotIndex, J: right})

	store := left
	for i := left; i < right; i++ {
		q.tb.Add(step.Compare{I: i, J: right})
		if q.compare(a[i], pivot) < 0 {
			q.tb.Add(step.Swap{I: i, J: store})
			a[i], a[store] = a[store], a[i]
			store++
		}
	}

	q.tb.Add(step.Swap{I: store, J: right})
	a[store], a[right] = a[right], a[store]
	q.tb.Add(step.Done{Index: store})

	return store
}
