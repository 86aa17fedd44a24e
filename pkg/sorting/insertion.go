package sorting

import (
	"cmp"

	"algotrace/pkg/step"
	"algotrace/pkg/trace"
)

// Insertion traces insertion sort over the natural order of T.
func Insertion[T cmp.Ordered](seq []T) trace.Trace {
	return InsertionFunc(seq, cmp.Compare[T])
}

// InsertionFunc records, for every key from index 1: a Key marker, a
// Compare+Shift pair per strictly greater predecessor, and a final Place.
// Place writes in place; Insert is reserved for list insertion, which grows
// the sequence.
func InsertionFunc[T any](seq []T, compare CompareFunc[T]) trace.Trace {
	a := clone(seq)
	n := len(a)
	tb := trace.NewBuilder(n * 2)

	for i := 1; i < n; i++ {
		key := a[i]
		tb.Add(step.Key[T]{I: i, Value: key})

		j := i - 1
		for j >= 0 && compare(a[j], key) > 0 {
			tb.Add(step.Compare{I: j, J: j + 1}, step.Shift{From: j, To: j + 1})
			a[j+1] = a[j]
			j--
		}

		a[j+1] = key
		tb.Add(step.Place[T]{Index: j + 1, Value: key})
	}

	return tb.Trace()
}
