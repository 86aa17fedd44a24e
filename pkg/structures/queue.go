package structures

import (
	"algotrace/pkg/step"
	"algotrace/pkg/trace"
)

// Enqueue adds v at the rear. The front is index 0.
func Enqueue[T any](state []T, v T) (trace.Trace, []T) {
	tb := trace.NewBuilder(4)
	next := clone(state, 1)

	if len(next) > 0 {
		tb.Add(step.Highlight{Index: step.At(len(next) - 1)})
	}
	next = append(next, v)
	tb.Add(
		step.Append[T]{Value: v},
		step.Front{Index: step.At(0)},
		step.Rear{Index: step.At(len(next) - 1)},
	)

	return tb.Trace(), next
}

// Dequeue removes the front element. An empty queue yields a single noop.
func Dequeue[T any](state []T) (trace.Trace, []T) {
	if len(state) == 0 {
		return emptyNoop[T]()
	}

	tb := trace.NewBuilder(4)
	v := state[0]
	next := clone(state[1:], 0)

	tb.Add(
		step.Highlight{Index: step.At(0)},
		step.PopLeft[T]{Value: v},
		step.Front{Index: firstIndex(next)},
		step.Rear{Index: lastIndex(next)},
	)
	return tb.Trace(), next
}
