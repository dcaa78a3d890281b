package api

import (
	"net/http"

	"github.com/ciphersql/studio/pkg/models"
	"github.com/ciphersql/studio/pkg/repository"
)

type AssignmentsHandler struct {
	assignmentRepo repository.AssignmentRepo
}

func NewAssignmentsHandler(ar repository.AssignmentRepo) *AssignmentsHandler {
	return &AssignmentsHandler{assignmentRepo: ar}
}

// List returns the whole catalog ordered by difficulty, then title. There
// is no filtering or pagination; the catalog is small and immutable.
func (h *AssignmentsHandler) List(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentRepo.ListAssignments(r.Context())
	if err != nil {
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if assignments == nil {
		assignments = []models.Assignment{}
	}

	writeJSON(w, assignments, http.StatusOK)
}
