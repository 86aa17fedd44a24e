package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"algotrace/pkg/metrics"
	"algotrace/pkg/structures"
	"algotrace/pkg/traceerrors"
)

type structureRequest struct {
	State  json.RawMessage `json:"state"`
	Action string          `json:"action"`
	Value  json.RawMessage `json:"value"`
	Index  json.RawMessage `json:"index"`
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// parseState decodes the client-held state. A missing state is an empty structure.
func (s *Server) parseState(raw json.RawMessage) ([]any, error) {
	if isAbsent(raw) {
		return []any{}, nil
	}

	var state []any
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("%w: 'state' must be a list", traceerrors.ErrInvalidInput)
	}
	if len(state) > s.cfg.Limits.MaxSequenceLen {
		return nil, fmt.Errorf("%w: 'state' must hold at most %d elements",
			traceerrors.ErrSequenceTooLong, s.cfg.Limits.MaxSequenceLen)
	}
	return state, nil
}

// parseIndex accepts only JSON integer literals; "0", 1.5 and 1e2 are rejected.
// Integers beyond the int range saturate, so the engine clamps them like any
// other out-of-range index.
func parseIndex(raw json.RawMessage) (*int, error) {
	errNotInt := fmt.Errorf("%w: 'index' must be int", traceerrors.ErrInvalidInput)
	if isAbsent(raw) {
		return nil, errNotInt
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, errNotInt
	}
	num, ok := v.(json.Number)
	if !ok || strings.ContainsAny(num.String(), ".eE") {
		return nil, errNotInt
	}

	idx, err := strconv.Atoi(num.String())
	switch {
	case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(num.String(), "-"):
		idx = math.MinInt
	case errors.Is(err, strconv.ErrRange):
		idx = math.MaxInt
	case err != nil:
		return nil, errNotInt
	}
	return &idx, nil
}

func parseValue(raw json.RawMessage) (*any, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: 'value' is not valid JSON", traceerrors.ErrInvalidInput)
	}
	return &v, nil
}

// errorMessage strips the sentinel prefix so clients see only the cause.
func errorMessage(err error) string {
	for _, sentinel := range []error{
		traceerrors.ErrInvalidInput,
		traceerrors.ErrSequenceTooLong,
		traceerrors.ErrMissingOperand,
	} {
		if errors.Is(err, sentinel) {
			msg := err.Error()
			prefix := sentinel.Error() + ": "
			if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
				return msg[len(prefix):]
			}
		}
	}
	return err.Error()
}

func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	structure := structures.Structure(chi.URLParam(r, "structure"))
	if len(structures.Actions(structure)) == 0 {
		s.writeError(w, "ds", http.StatusNotFound, fmt.Sprintf("Unknown structure %q.", structure))
		return
	}

	var req structureRequest
	if err := decodeBody(r, &req); err != nil {
		msg := msgBodyNotObject
		if err.Field == "action" {
			msg = "Invalid action"
		}
		s.writeError(w, "ds", http.StatusBadRequest, msg)
		return
	}

	state, err := s.parseState(req.State)
	if err != nil {
		s.writeError(w, "ds", statusFor(err), errorMessage(err))
		return
	}

	var ops structures.Operands[any]
	action := structures.Action(req.Action)

	if structure == structures.LinkedList {
		if ops.Index, err = parseIndex(req.Index); err != nil {
			s.writeError(w, "ds", statusFor(err), errorMessage(err))
			return
		}
	}
	if ops.Value, err = parseValue(req.Value); err != nil {
		s.writeError(w, "ds", statusFor(err), errorMessage(err))
		return
	}

	tr, next, err := structures.Apply(structure, action, state, ops)
	switch {
	case errors.Is(err, traceerrors.ErrUnknownAction):
		s.writeError(w, "ds", http.StatusBadRequest, "Invalid action")
		return
	case err != nil:
		s.writeError(w, "ds", statusFor(err), errorMessage(err))
		return
	}

	labels := map[string]string{"structure": string(structure), "action": string(action)}
	s.metrics.IncCounter(metrics.EngineCalls, labels, 1)
	s.metrics.IncCounter(metrics.StepsEmitted, labels, float64(len(tr)))

	traceID := uuid.NewString()
	slog.Info("structure traced", "trace_id", traceID, "structure", structure, "action", action, "steps", len(tr))

	status := http.StatusOK
	if action.Creates() {
		status = http.StatusCreated
	}
	s.writeJSON(w, status, StructureResponse{
		Structure: string(structure),
		Action:    string(action),
		TraceID:   traceID,
		Steps:     tr,
		NewState:  next,
	})
}
