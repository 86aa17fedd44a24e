// Package step defines the closed vocabulary of atomic actions that the
// sorting and structure engines record while they run.
//
// Step is a sealed interface: only the types declared here implement it, so a
// replayer can switch over every kind exhaustively. Kinds that carry an
// element value are generic over the element type.
package step

// Kind is the wire name of a step.
type Kind string

const (
	KindCompare   Kind = "compare"
	KindSwap      Kind = "swap"
	KindOverwrite Kind = "overwrite"
	KindShift     Kind = "shift"
	KindSplit     Kind = "split"
	KindPivot     Kind = "pivot"
	KindDone      Kind = "done"
	KindKey       Kind = "key"
	KindPlace     Kind = "place"
	KindInsert    Kind = "insert"
	KindDelete    Kind = "delete"
	KindAppend    Kind = "append"
	KindPop       Kind = "pop"
	KindPopLeft   Kind = "popleft"
	KindHighlight Kind = "highlight"
	KindFront     Kind = "front"
	KindRear      Kind = "rear"
	KindTop       Kind = "top"
	KindNoop      Kind = "noop"
)

// Reason explains why an operation had no effect.
type Reason string

// ReasonEmpty is reported when pop, dequeue or delete meet an empty structure.
const ReasonEmpty Reason = "empty"

// Step is one atomic observable action.
type Step interface {
	Kind() Kind
	sealed()
}

// At returns a pointer to i, for marker steps with a nullable index.
func At(i int) *int {
	return &i
}

// IsMarker reports whether s has no effect under replay.
func IsMarker(s Step) bool {
	switch s.Kind() {
	case KindCompare, KindSplit, KindPivot, KindDone, KindKey,
		KindHighlight, KindFront, KindRear, KindTop, KindNoop:
		return true
	default:
		return false
	}
}

// Compare records that the elements at I and J were compared.
type Compare struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Swap exchanges the elements at I and J.
type Swap struct {
	I int `json:"i"`
	J int `json:"j"`
}

// Overwrite sets the element at Index to Value.
type Overwrite[T any] struct {
	Index int `json:"index"`
	Value T   `json:"value"`
}

// Shift copies the element at From into To.
type Shift struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Split marks a recursive call over the half-open range [Start, End).
type Split struct {
	Start int `json:"start"`
	Mid   int `json:"mid"`
	End   int `json:"end"`
}

// Pivot marks the chosen pivot index.
type Pivot struct {
	Index int `json:"index"`
}

// Done marks an element that reached its final sorted position.
type Done struct {
	Index int `json:"index"`
}

// Key marks the element picked up by insertion sort.
type Key[T any] struct {
	I     int `json:"i"`
	Value T   `json:"value"`
}

// Place drops the insertion-sort key into the slot at Index.
// Unlike Insert it does not change the length of the sequence.
type Place[T any] struct {
	Index int `json:"index"`
	Value T   `json:"value"`
}

// Insert inserts Value at Index, moving later elements right.
type Insert[T any] struct {
	Index int `json:"index"`
	Value T   `json:"value"`
}

// Delete removes the element at Index. Value is the removed element.
type Delete[T any] struct {
	Index int `json:"index"`
	Value T   `json:"value"`
}

// Append adds Value at the end.
type Append[T any] struct {
	Value T `json:"value"`
}

// Pop removes the last element, which was Value.
type Pop[T any] struct {
	Value T `json:"value"`
}

// PopLeft removes the first element, which was Value.
type PopLeft[T any] struct {
	Value T `json:"value"`
}

// Highlight points at an element. A nil Index means nothing is highlighted.
type Highlight struct {
	Index *int `json:"index"`
}

// Front is the queue front pointer.
type Front struct {
	Index *int `json:"index"`
}

// Rear is the queue rear pointer.
type Rear struct {
	Index *int `json:"index"`
}

// Top is the stack top pointer.
type Top struct {
	Index *int `json:"index"`
}

// Noop reports an operation that changed nothing.
type Noop struct {
	Reason Reason `json:"reason"`
}

func (Compare) Kind() Kind      { return KindCompare }
func (Swap) Kind() Kind         { return KindSwap }
func (Overwrite[T]) Kind() Kind { return KindOverwrite }
func (Shift) Kind() Kind        { return KindShift }
func (Split) Kind() Kind        { return KindSplit }
func (Pivot) Kind() Kind        { return KindPivot }
func (Done) Kind() Kind         { return KindDone }
func (Key[T]) Kind() Kind       { return KindKey }
func (Place[T]) Kind() Kind     { return KindPlace }
func (Insert[T]) Kind() Kind    { return KindInsert }
func (Delete[T]) Kind() Kind    { return KindDelete }
func (Append[T]) Kind() Kind    { return KindAppend }
func (Pop[T]) Kind() Kind       { return KindPop }
func (PopLeft[T]) Kind() Kind   { return KindPopLeft }
func (Highlight) Kind() Kind    { return KindHighlight }
func (Front) Kind() Kind        { return KindFront }
func (Rear) Kind() Kind         { return KindRear }
func (Top) Kind() Kind          { return KindTop }
func (Noop) Kind() Kind         { return KindNoop }

func (Compare) sealed()      {}
func (Swap) sealed()         {}
func (Overwrite[T]) sealed() {}
func (Shift) sealed()        {}
func (Split) sealed()        {}
func (Pivot) sealed()        {}
func (Done) sealed()         {}
func (Key[T]) sealed()       {}
func (Place[T]) sealed()     {}
func (Insert[T]) sealed()    {}
func (Delete[T]) sealed()    {}
func (Append[T]) sealed()    {}
func (Pop[T]) sealed()       {}
func (PopLeft[T]) sealed()   {}
func (Highlight) sealed()    {}
func (Front) sealed()        {}
func (Rear) sealed()         {}
func (Top) sealed()          {}
func (Noop) sealed()         {}
