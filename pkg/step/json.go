package step

import (
	"encoding/json"
	"fmt"

	"algotrace/pkg/traceerrors"
)

// Every step marshals to a flat object whose "type" field carries the Kind.

func pairJSON(k Kind, i, j int) ([]byte, error) {
	return json.Marshal(struct {
		Type Kind `json:"type"`
		I    int  `json:"i"`
		J    int  `json:"j"`
	}{k, i, j})
}

func indexJSON(k Kind, index int) ([]byte, error) {
	return json.Marshal(struct {
		Type  Kind `json:"type"`
		Index int  `json:"index"`
	}{k, index})
}

func markerJSON(k Kind, index *int) ([]byte, error) {
	return json.Marshal(struct {
		Type  Kind `json:"type"`
		Index *int `json:"index"`
	}{k, index})
}

func indexValueJSON[T any](k Kind, index int, v T) ([]byte, error) {
	return json.Marshal(struct {
		Type  Kind `json:"type"`
		Index int  `json:"index"`
		Value T    `json:"value"`
	}{k, index, v})
}

func valueJSON[T any](k Kind, v T) ([]byte, error) {
	return json.Marshal(struct {
		Type  Kind `json:"type"`
		Value T    `json:"value"`
	}{k, v})
}

func (s Compare) MarshalJSON() ([]byte, error) { return pairJSON(KindCompare, s.I, s.J) }
func (s Swap) MarshalJSON() ([]byte, error)    { return pairJSON(KindSwap, s.I, s.J) }

func (s Shift) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Kind `json:"type"`
		From int  `json:"from"`
		To   int  `json:"to"`
	}{KindShift, s.From, s.To})
}

func (s Split) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  Kind `json:"type"`
		Start int  `json:"start"`
		Mid   int  `json:"mid"`
		End   int  `json:"end"`
	}{KindSplit, s.Start, s.Mid, s.End})
}

func (s Pivot) MarshalJSON() ([]byte, error) { return indexJSON(KindPivot, s.Index) }
func (s Done) MarshalJSON() ([]byte, error)  { return indexJSON(KindDone, s.Index) }

func (s Key[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  Kind `json:"type"`
		I     int  `json:"i"`
		Value T    `json:"value"`
	}{KindKey, s.I, s.Value})
}

func (s Overwrite[T]) MarshalJSON() ([]byte, error) {
	return indexValueJSON(KindOverwrite, s.Index, s.Value)
}

func (s Place[T]) MarshalJSON() ([]byte, error) {
	return indexValueJSON(KindPlace, s.Index, s.Value)
}

func (s Insert[T]) MarshalJSON() ([]byte, error) {
	return indexValueJSON(KindInsert, s.Index, s.Value)
}

func (s Delete[T]) MarshalJSON() ([]byte, error) {
	return indexValueJSON(KindDelete, s.Index, s.Value)
}

func (s Append[T]) MarshalJSON() ([]byte, error)  { return valueJSON(KindAppend, s.Value) }
func (s Pop[T]) MarshalJSON() ([]byte, error)     { return valueJSON(KindPop, s.Value) }
func (s PopLeft[T]) MarshalJSON() ([]byte, error) { return valueJSON(KindPopLeft, s.Value) }

func (s Highlight) MarshalJSON() ([]byte, error) { return markerJSON(KindHighlight, s.Index) }
func (s Front) MarshalJSON() ([]byte, error)     { return markerJSON(KindFront, s.Index) }
func (s Rear) MarshalJSON() ([]byte, error)      { return markerJSON(KindRear, s.Index) }
func (s Top) MarshalJSON() ([]byte, error)       { return markerJSON(KindTop, s.Index) }

func (s Noop) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   Kind   `json:"type"`
		Reason Reason `json:"reason"`
	}{KindNoop, s.Reason})
}

// Decode parses one wire step. Value-carrying kinds decode their value as T.
func Decode[T any](data []byte) (Step, error) {
	var head struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode step: %w", err)
	}

	switch head.Type {
	case KindCompare:
		return decodeAs[Compare](data)
	case KindSwap:
		return decodeAs[Swap](data)
	case KindOverwrite:
		return decodeAs[Overwrite[T]](data)
	case KindShift:
		return decodeAs[Shift](data)
	case KindSplit:
		return decodeAs[Split](data)
	case KindPivot:
		return decodeAs[Pivot](data)
	case KindDone:
		return decodeAs[Done](data)
	case KindKey:
		return decodeAs[Key[T]](data)
	case KindPlace:
		return decodeAs[Place[T]](data)
	case KindInsert:
		return decodeAs[Insert[T]](data)
	case KindDelete:
		return decodeAs[Delete[T]](data)
	case KindAppend:
		return decodeAs[Append[T]](data)
	case KindPop:
		return decodeAs[Pop[T]](data)
	case KindPopLeft:
		return decodeAs[PopLeft[T]](data)
	case KindHighlight:
		return decodeAs[Highlight](data)
	case KindFront:
		return decodeAs[Front](data)
	case KindRear:
		return decodeAs[Rear](data)
	case KindTop:
		return decodeAs[Top](data)
	case KindNoop:
		return decodeAs[Noop](data)
	default:
		return nil, fmt.Errorf("%w: %q", traceerrors.ErrUnknownStep, head.Type)
	}
}

// DecodeList parses a JSON array of wire steps.
func DecodeList[T any](data []byte) ([]Step, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode steps: %w", err)
	}

	steps := make([]Step, 0, len(raw))
	for i, r := range raw {
		s, err := Decode[T](r)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func decodeAs[S Step](data []byte) (Step, error) {
	var s S
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Kind(), err)
	}
	return s, nil
}
