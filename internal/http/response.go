package http

import (
	"algotrace/pkg/trace"
)

type Status string

const (
	// StatusOK is used for health-check responses.
	StatusOK Status = "OK"

	// StatusError indicates an operation failed.
	StatusError Status = "error"
)

// Response represents the standard status/error envelope.
type Response struct {
	Status Status `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

func NewOKResponse() Response {
	return Response{Status: StatusOK}
}

func NewErrorResponse(err string) Response {
	return Response{Status: StatusError, Error: err}
}

// SortResponse carries the trace of one sort engine.
// Insertion sort writes each key back with a "place" step ({"index","value"},
// a[index] = value); "insert" only appears in linked-list traces.
type SortResponse struct {
	Algorithm string      `json:"algorithm"`
	TraceID   string      `json:"trace_id,omitempty"`
	Steps     trace.Trace `json:"steps"`
}

// BatchSortResponse carries the traces of several engines over the same input.
type BatchSortResponse struct {
	TraceID string         `json:"trace_id"`
	Results []SortResponse `json:"results"`
}

// StructureResponse carries the trace and the state after the operation.
// Clients send NewState back as the next request's state.
type StructureResponse struct {
	Structure string      `json:"structure"`
	Action    string      `json:"action"`
	TraceID   string      `json:"trace_id"`
	Steps     trace.Trace `json:"steps"`
	NewState  []any       `json:"new_state"`
}

type UploadResponse struct {
	Message string    `json:"message"`
	Array   []float64 `json:"array"`
}

type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}
