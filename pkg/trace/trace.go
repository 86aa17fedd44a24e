package trace

import (
	"algotrace/pkg/step"
)

// Trace is the ordered list of steps one engine call performed.
// Only sequential replay from the original state is meaningful.
type Trace []step.Step

// Builder accumulates steps for a single engine call. Recursive engines
// pass the same *Builder down the recursion.
type Builder struct {
	steps []step.Step
}

// NewBuilder returns a builder with room for sizeHint steps.
func NewBuilder(sizeHint int) *Builder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Builder{steps: make([]step.Step, 0, sizeHint)}
}

// Add appends steps in order.
func (b *Builder) Add(steps ...step.Step) {
	b.steps = append(b.steps, steps...)
}

// Len is the number of steps recorded so far.
func (b *Builder) Len() int {
	return len(b.steps)
}

// Trace returns the recorded steps. The result is never nil.
func (b *Builder) Trace() Trace {
	if b.steps == nil {
		return Trace{}
	}
	return Trace(b.steps)
}

// Count tallies steps by kind.
func Count(tr Trace) map[step.Kind]int {
	out := make(map[step.Kind]int)
	for _, s := range tr {
		out[s.Kind()]++
	}
	return out
}

// Decode parses a JSON array of steps whose values are of type T.
func Decode[T any](data []byte) (Trace, error) {
	steps, err := step.DecodeList[T](data)
	if err != nil {
		return nil, err
	}
	return Trace(steps), nil
}
