// Package sorting implements trace-emitting sort engines.
//
// Engines never touch their input: they sort a private copy and return only
// the trace. Replaying the trace over the original input with trace.Replay
// yields the input sorted in non-decreasing order.
package sorting

import (
	"cmp"

	"algotrace/pkg/trace"
)

// Engine sorts a copy of seq and returns the recorded trace.
type Engine[T any] func(seq []T) trace.Trace

// CompareFunc orders two elements like cmp.Compare.
type CompareFunc[T any] func(a, b T) int

// Names of the built-in engines.
const (
	NameBubble    = "bubble"
	NameInsertion = "insertion"
	NameMerge     = "merge"
	NameQuick     = "quick"
)

// Engines returns every built-in engine for an ordered element type, keyed by name.
func Engines[T cmp.Ordered]() map[string]Engine[T] {
	return map[string]Engine[T]{
		NameBubble:    Bubble[T],
		NameInsertion: Insertion[T],
		NameMerge:     Merge[T],
		NameQuick:     Quick[T],
	}
}

func clone[T any](seq []T) []T {
	out := make([]T, len(seq))
	copy(out, seq)
	return out
}
