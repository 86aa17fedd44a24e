package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"algotrace/pkg/metrics"
	"algotrace/pkg/sorting"
	"algotrace/pkg/trace"
	"algotrace/pkg/traceerrors"
)

const (
	msgArrayNotList      = "Body must include 'array' as a JSON list."
	msgArrayNotNumbers   = "All elements in 'array' must be numbers."
	msgAlgorithmsNotList = "'algorithms' must be a list of names."
	msgBodyNotObject     = "Body must be a JSON object."
)

type sortRequest struct {
	Array      json.RawMessage `json:"array"`
	Algorithms []string        `json:"algorithms"`
}

// decodeBody reads a JSON object into dst. A missing or malformed body is
// treated as an empty object; field validation reports the actual problem.
// Well-formed JSON of the wrong shape is returned as a type error. Its Field
// is empty when the body itself is not an object.
func decodeBody(r *http.Request, dst any) *json.UnmarshalTypeError {
	if r.Body == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if err := json.NewDecoder(r.Body).Decode(dst); errors.As(err, &typeErr) {
		return typeErr
	}
	return nil
}

// sortBodyError maps a type error in a sort request onto a client message.
func sortBodyError(err *json.UnmarshalTypeError) string {
	if strings.HasPrefix(err.Field, "algorithms") {
		return msgAlgorithmsNotList
	}
	return msgArrayNotList
}

// parseArray validates that raw is a JSON list of numbers.
func (s *Server) parseArray(raw json.RawMessage) ([]float64, int, string) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, http.StatusBadRequest, msgArrayNotList
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, http.StatusBadRequest, msgArrayNotList
	}
	if len(items) > s.cfg.Limits.MaxSequenceLen {
		return nil, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("'array' must hold at most %d elements.", s.cfg.Limits.MaxSequenceLen)
	}

	out := make([]float64, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &out[i]); err != nil || bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			return nil, http.StatusBadRequest, msgArrayNotNumbers
		}
	}
	return out, http.StatusOK, ""
}

func (s *Server) runSort(name string, engine sorting.Engine[float64], seq []float64) trace.Trace {
	tr := engine(seq)

	labels := map[string]string{"algorithm": name}
	s.metrics.IncCounter(metrics.EngineCalls, labels, 1)
	s.metrics.IncCounter(metrics.StepsEmitted, labels, float64(len(tr)))
	s.metrics.ObserveHistogram(metrics.TraceLength, labels, float64(len(tr)))
	s.metrics.SetGauge(metrics.InputLength, labels, float64(len(seq)))
	return tr
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "algorithm")
	engine, err := s.sorters.Lookup(name)
	if err != nil {
		s.writeError(w, "sort", http.StatusNotFound, fmt.Sprintf("Unknown algorithm %q.", name))
		return
	}

	var req sortRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, "sort", http.StatusBadRequest, sortBodyError(err))
		return
	}

	seq, status, msg := s.parseArray(req.Array)
	if msg != "" {
		s.writeError(w, "sort", status, msg)
		return
	}

	tr := s.runSort(name, engine, seq)
	traceID := uuid.NewString()
	slog.Info("sort traced", "trace_id", traceID, "algorithm", name, "n", len(seq), "steps", len(tr))

	s.writeJSON(w, http.StatusOK, SortResponse{Algorithm: name, TraceID: traceID, Steps: tr})
}

// handleSortBatch runs several engines over the same input concurrently.
// Engines are pure, so they share the decoded sequence without copying.
func (s *Server) handleSortBatch(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, "sort", http.StatusBadRequest, sortBodyError(err))
		return
	}

	seq, status, msg := s.parseArray(req.Array)
	if msg != "" {
		s.writeError(w, "sort", status, msg)
		return
	}

	names := req.Algorithms
	if len(names) == 0 {
		names = s.sorters.Names()
	}
	engines := make([]sorting.Engine[float64], len(names))
	for i, name := range names {
		e, err := s.sorters.Lookup(name)
		if err != nil {
			s.writeError(w, "sort", http.StatusNotFound, fmt.Sprintf("Unknown algorithm %q.", name))
			return
		}
		engines[i] = e
	}

	results := make([]SortResponse, len(names))
	var eg errgroup.Group
	for i := range engines {
		eg.Go(func() error {
			results[i] = SortResponse{Algorithm: names[i], Steps: s.runSort(names[i], engines[i], seq)}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		s.writeError(w, "sort", http.StatusInternalServerError, err.Error())
		return
	}

	traceID := uuid.NewString()
	slog.Info("batch sort traced", "trace_id", traceID, "algorithms", names, "n", len(seq))
	s.writeJSON(w, http.StatusOK, BatchSortResponse{TraceID: traceID, Results: results})
}

// statusFor maps core errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, traceerrors.ErrUnknownAlgorithm):
		return http.StatusNotFound
	case errors.Is(err, traceerrors.ErrSequenceTooLong):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}
