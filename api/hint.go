package api

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/ciphersql/studio/pkg/hint"
)

const (
	hintDisabledMessage = "AI assistance is currently disabled in this environment. Please allow time for the administrator to configure the API key."
	hintOfflineMessage  = "The tutor is currently offline. Please try again later."
)

// HintProvider is the boundary to the external tutoring model.
type HintProvider interface {
	Hint(ctx context.Context, ac hint.AssignmentContext, currentQuery string) (string, error)
}

type HintHandler struct {
	provider HintProvider
}

// NewHintHandler creates the hint endpoint handler. A nil provider means
// hints are disabled; the handler then answers 503 without any network call.
func NewHintHandler(provider HintProvider) *HintHandler {
	return &HintHandler{provider: provider}
}

type hintRequest struct {
	AssignmentContext hint.AssignmentContext `json:"assignmentContext"`
	CurrentQuery      string                 `json:"currentQuery"`
}

type hintResponse struct {
	Hint string `json:"hint"`
}

func (h *HintHandler) Hint(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		writeJSON(w, hintResponse{Hint: hintDisabledMessage}, http.StatusServiceUnavailable)
		return
	}

	var req hintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.AssignmentContext.Title == "" {
		writeError(w, "Missing assignmentContext", http.StatusBadRequest)
		return
	}

	out, err := h.provider.Hint(r.Context(), req.AssignmentContext, req.CurrentQuery)
	if err != nil {
		// a flaky tutor must never fail the surrounding request with a 500
		logger.Warn("hint provider error", slog.Any("err", err))
		writeJSON(w, hintResponse{Hint: hintOfflineMessage}, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, hintResponse{Hint: out}, http.StatusOK)
}
