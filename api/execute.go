package api

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/ciphersql/studio/internal/sandbox"
	"github.com/ciphersql/studio/pkg/models"
	"github.com/ciphersql/studio/pkg/repository"
)

type ExecuteHandler struct {
	runner      sandbox.Runner
	attemptRepo repository.AttemptRepo
}

func NewExecuteHandler(runner sandbox.Runner, ar repository.AttemptRepo) *ExecuteHandler {
	return &ExecuteHandler{runner: runner, attemptRepo: ar}
}

type executeRequest struct {
	SQL          string `json:"sql"`
	UserEmail    string `json:"user_email,omitempty"`
	AssignmentID string `json:"assignment_id,omitempty"`
}

// Execute vets the submitted query against the keyword blacklist, runs it
// against the sandbox tables and returns the rows. When both a user email
// and an assignment id are supplied, one attempt row is recorded as a
// side effect; recording is best-effort and never fails the request.
func (h *ExecuteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.SQL == "" {
		writeError(w, "Missing sql", http.StatusBadRequest)
		return
	}

	if err := sandbox.Check(req.SQL); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	result, err := h.runner.Run(ctx, req.SQL)
	if err != nil {
		// surface the driver's message; this is a learning sandbox, not
		// a production query engine
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.UserEmail != "" && req.AssignmentID != "" {
		attempt := &models.Attempt{
			UserEmail:    req.UserEmail,
			AssignmentID: req.AssignmentID,
			Query:        req.SQL,
			IsSuccess:    true,
		}
		if _, err := h.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
			// the attempt log is non-critical; the query result still
			// goes back to the caller
			logger.Warn("failed to record attempt",
				slog.String("user_email", req.UserEmail),
				slog.String("assignment_id", req.AssignmentID),
				slog.Any("err", err),
			)
		}
	}

	writeJSON(w, result, http.StatusOK)
}
