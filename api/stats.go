package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ciphersql/studio/internal/stats"
	"github.com/ciphersql/studio/pkg/repository"
)

type StatsHandler struct {
	attemptRepo repository.AttemptRepo
}

func NewStatsHandler(ar repository.AttemptRepo) *StatsHandler {
	return &StatsHandler{attemptRepo: ar}
}

// UserStats derives solved count, xp, rank, streak, history and progress
// from the attempt log. Nothing is persisted; every call recomputes from
// the log.
func (h *StatsHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email == "" {
		writeError(w, "Missing email", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	solved, err := h.attemptRepo.CountSolvedAssignments(ctx, email)
	if err != nil {
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	days, err := h.attemptRepo.DailyActivity(ctx, email)
	if err != nil {
		writeError(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats.Compute(solved, days), http.StatusOK)
}
