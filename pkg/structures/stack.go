package structures

import (
	"algotrace/pkg/step"
	"algotrace/pkg/trace"
)

// Push appends v on top of the stack. The top is the last element.
func Push[T any](state []T, v T) (trace.Trace, []T) {
	tb := trace.NewBuilder(3)
	next := clone(state, 1)

	if len(next) > 0 {
		tb.Add(step.Highlight{Index: step.At(len(next) - 1)})
	}
	next = append(next, v)
	tb.Add(step.Append[T]{Value: v}, step.Top{Index: step.At(len(next) - 1)})

	return tb.Trace(), next
}

// Pop removes the top of the stack. An empty stack yields a single noop.
func Pop[T any](state []T) (trace.Trace, []T) {
	if len(state) == 0 {
		return emptyNoop[T]()
	}

	tb := trace.NewBuilder(3)
	next := clone(state, 0)
	top := len(next) - 1
	v := next[top]
	next = next[:top]

	tb.Add(
		step.Highlight{Index: step.At(top)},
		step.Pop[T]{Value: v},
		step.Top{Index: lastIndex(next)},
	)
	return tb.Trace(), next
}
