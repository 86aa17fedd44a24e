package sorting

import (
	"cmp"

	"algotrace/pkg/step"
	"algotrace/pkg/trace"
)

// Bubble traces bubble sort over the natural order of T.
func Bubble[T cmp.Ordered](seq []T) trace.Trace {
	return BubbleFunc(seq, cmp.Compare[T])
}

// BubbleFunc records one step per adjacent pair: a Swap when the pair is out
// of order, a Compare otherwise. It stops after the first pass without swaps.
func BubbleFunc[T any](seq []T, compare CompareFunc[T]) trace.Trace {
	a := clone(seq)
	n := len(a)
	tb := trace.NewBuilder(n)

	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if compare(a[j], a[j+1]) > 0 {
				a[j], a[j+1] = a[j+1], a[j]
				tb.Add(step.Swap{I: j, J: j + 1})
				swapped = true
				continue
			}
			tb.Add(step.Compare{I: j, J: j + 1})
		}
		if !swapped {
			break
		}
	}

	return tb.Trace()
}
