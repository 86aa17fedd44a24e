package structures

import (
	"slices"

	"algotrace/pkg/step"
	"algotrace/pkg/trace"
)

// InsertAt inserts v at index clamped to [0, len(state)].
func InsertAt[T any](state []T, index int, v T) (trace.Trace, []T) {
	index = clamp(index, 0, len(state))

	next := slices.Insert(clone(state, 1), index, v)
	return trace.Trace{step.Insert[T]{Index: index, Value: v}}, next
}

// DeleteAt removes the element at index clamped to [0, len(state)-1].
// An empty list yields a single noop.
func DeleteAt[T any](state []T, index int) (trace.Trace, []T) {
	if len(state) == 0 {
		return emptyNoop[T]()
	}
	index = clamp(index, 0, len(state)-1)

	removed := state[index]
	next := slices.Delete(clone(state, 0), index, index+1)
	return trace.Trace{step.Delete[T]{Index: index, Value: removed}}, next
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
