// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"io"
	"net/http"
)

const defaultMaxBodyBytes = 4 << 20

// AnalyzeHandler handles gaze-trace analysis requests.
type AnalyzeHandler struct {
	deps         Dependencies
	maxBodyBytes int64
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies, maxBodyBytes int64) *AnalyzeHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &AnalyzeHandler{deps: deps, maxBodyBytes: maxBodyBytes}
}

// HandleAnalyze handles POST /analyze requests.
//
// The request body is the raw delimited trace text. The response is
// always HTTP 200 with either the success or the failure report; only
// transport-level problems (unreadable or oversized body) use an error
// status. Clients always receive a JSON document, never a bare error.
func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", WrapKind(op, ErrPayloadTooLarge, err))
			return
		}
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	report := h.deps.Analyze(r.Context(), string(body))
	writeJSON(w, http.StatusOK, report)
}
