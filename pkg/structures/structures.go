// Package structures implements trace-emitting stack, queue and linked-list
// operations over plain slices.
//
// Every operation takes the current state and returns the trace together with
// a freshly allocated new state; the caller's slice is never modified.
// Empty structures and out-of-range indices never fail: the former produce a
// single noop step, the latter are clamped.
package structures

import (
	"fmt"
	"slices"

	"algotrace/pkg/step"
	"algotrace/pkg/trace"
	"algotrace/pkg/traceerrors"
)

// Structure names a linear structure.
type Structure string

const (
	Stack      Structure = "stack"
	Queue      Structure = "queue"
	LinkedList Structure = "linked-list"
)

// Action names an operation on a Structure.
type Action string

const (
	ActionPush     Action = "push"
	ActionPop      Action = "pop"
	ActionEnqueue  Action = "enqueue"
	ActionDequeue  Action = "dequeue"
	ActionInsertAt Action = "insert_at"
	ActionDeleteAt Action = "delete_at"
)

// Creates reports whether the action adds an element.
func (a Action) Creates() bool {
	return a == ActionPush || a == ActionEnqueue || a == ActionInsertAt
}

// NeedsValue reports whether the action requires a value operand.
func (a Action) NeedsValue() bool {
	return a.Creates()
}

// NeedsIndex reports whether the action requires an index operand.
func (a Action) NeedsIndex() bool {
	return a == ActionInsertAt || a == ActionDeleteAt
}

// Operands are the optional arguments of an action.
type Operands[T any] struct {
	Value *T
	Index *int
}

// Actions lists the actions a structure supports.
func Actions(s Structure) []Action {
	switch s {
	case Stack:
		return []Action{ActionPush, ActionPop}
	case Queue:
		return []Action{ActionEnqueue, ActionDequeue}
	case LinkedList:
		return []Action{ActionInsertAt, ActionDeleteAt}
	default:
		return nil
	}
}

// Apply dispatches action on structure s.
func Apply[T any](s Structure, action Action, state []T, ops Operands[T]) (trace.Trace, []T, error) {
	if !supports(s, action) {
		return nil, nil, fmt.Errorf("%w: %q on %q", traceerrors.ErrUnknownAction, action, s)
	}
	if action.NeedsValue() && ops.Value == nil {
		return nil, nil, fmt.Errorf("%w: 'value' required for %s", traceerrors.ErrMissingOperand, action)
	}
	if action.NeedsIndex() && ops.Index == nil {
		return nil, nil, fmt.Errorf("%w: 'index' required for %s", traceerrors.ErrMissingOperand, action)
	}

	var (
		tr   trace.Trace
		next []T
	)
	switch action {
	case ActionPush:
		tr, next = Push(state, *ops.Value)
	case ActionPop:
		tr, next = Pop(state)
	case ActionEnqueue:
		tr, next = Enqueue(state, *ops.Value)
	case ActionDequeue:
		tr, next = Dequeue(state)
	case ActionInsertAt:
		tr, next = InsertAt(state, *ops.Index, *ops.Value)
	case ActionDeleteAt:
		tr, next = DeleteAt(state, *ops.Index)
	}
	return tr, next, nil
}

func supports(s Structure, action Action) bool {
	return slices.Contains(Actions(s), action)
}

func emptyNoop[T any]() (trace.Trace, []T) {
	return trace.Trace{step.Noop{Reason: step.ReasonEmpty}}, []T{}
}

// clone copies state into a new slice with spare capacity for extra elements.
func clone[T any](state []T, extra int) []T {
	out := make([]T, len(state), len(state)+extra)
	copy(out, state)
	return out
}

func firstIndex[T any](s []T) *int {
	if len(s) == 0 {
		return nil
	}
	return step.At(0)
}

func lastIndex[T any](s []T) *int {
	if len(s) == 0 {
		return nil
	}
	return step.At(len(s) - 1)
}
