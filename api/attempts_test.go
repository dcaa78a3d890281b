package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gorilla/mux"

	"github.com/ciphersql/studio/api"
	"github.com/ciphersql/studio/pkg/models"
	"github.com/ciphersql/studio/pkg/repository/mock"
)

func TestAttemptsListByEmail(t *testing.T) {
	m := mock.NewMocks()
	ctx := context.Background()
	for _, a := range []models.Attempt{
		{UserEmail: "alice@example.com", AssignmentID: "1", Query: "SELECT 1", IsSuccess: true, ExecutedAt: 1000},
		{UserEmail: "alice@example.com", AssignmentID: "2", Query: "SELECT 2", IsSuccess: true, ExecutedAt: 2000},
		{UserEmail: "bob@example.com", AssignmentID: "1", Query: "SELECT 3", IsSuccess: true, ExecutedAt: 3000},
	} {
		a := a
		if _, err := m.AttemptRepo.CreateAttempt(ctx, &a); err != nil {
			t.Fatalf("seed attempt: %v", err)
		}
	}

	h := api.NewAttemptsHandler(m.AttemptRepo)
	r := mux.NewRouter()
	r.HandleFunc("/api/attempts/{email}", h.ListByEmail).Methods("GET")

	rr := doJSON(t, r, http.MethodGet, "/api/attempts/alice@example.com", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got []models.Attempt
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(got))
	}
	// newest first
	if got[0].AssignmentID != "2" || got[1].AssignmentID != "1" {
		t.Fatalf("attempts not newest-first: %+v", got)
	}
}

func TestAttemptsListEmpty(t *testing.T) {
	m := mock.NewMocks()
	h := api.NewAttemptsHandler(m.AttemptRepo)
	r := mux.NewRouter()
	r.HandleFunc("/api/attempts/{email}", h.ListByEmail).Methods("GET")

	rr := doJSON(t, r, http.MethodGet, "/api/attempts/new@example.com", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body := rr.Body.String(); body != "[]\n" {
		t.Fatalf("empty history should encode as [], got %q", body)
	}
}
