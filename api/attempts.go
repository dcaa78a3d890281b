package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ciphersql/studio/pkg/models"
	"github.com/ciphersql/studio/pkg/repository"
)

type AttemptsHandler struct {
	attemptRepo repository.AttemptRepo
}

func NewAttemptsHandler(ar repository.AttemptRepo) *AttemptsHandler {
	return &AttemptsHandler{attemptRepo: ar}
}

// ListByEmail returns the user's full attempt history, newest first.
func (h *AttemptsHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == "" {
		writeError(w, "Missing email", http.StatusBadRequest)
		return
	}

	attempts, err := h.attemptRepo.ListAttemptsByEmail(r.Context(), email)
	if err != nil {
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if attempts == nil {
		attempts = []models.Attempt{}
	}

	writeJSON(w, attempts, http.StatusOK)
}
