package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gorilla/mux"

	"github.com/ciphersql/studio/api"
	"github.com/ciphersql/studio/pkg/models"
	"github.com/ciphersql/studio/pkg/repository/mock"
)

func TestAssignmentsList(t *testing.T) {
	m := mock.NewMocks()
	m.AssignmentRepo.Assignments = []models.Assignment{
		{ID: "1", Title: "Basics", Difficulty: "Beginner", Requirements: []string{"r1"}},
		{ID: "2", Title: "Joins", Difficulty: "Intermediate", Requirements: []string{"r1", "r2"}},
	}

	h := api.NewAssignmentsHandler(m.AssignmentRepo)
	r := mux.NewRouter()
	r.HandleFunc("/api/assignments", h.List).Methods("GET")

	rr := doJSON(t, r, http.MethodGet, "/api/assignments", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var got []models.Assignment
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(got) != 2 || got[0].ID != "1" || got[1].Title != "Joins" {
		t.Fatalf("unexpected catalog: %+v", got)
	}
}

func TestAssignmentsListEmpty(t *testing.T) {
	m := mock.NewMocks()
	h := api.NewAssignmentsHandler(m.AssignmentRepo)
	r := mux.NewRouter()
	r.HandleFunc("/api/assignments", h.List).Methods("GET")

	rr := doJSON(t, r, http.MethodGet, "/api/assignments", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body := rr.Body.String(); body != "[]\n" {
		t.Fatalf("empty catalog should encode as [], got %q", body)
	}
}

func TestAssignmentsListError(t *testing.T) {
	m := mock.NewMocks()
	m.AssignmentRepo.ListErr = errors.New("boom")
	h := api.NewAssignmentsHandler(m.AssignmentRepo)
	r := mux.NewRouter()
	r.HandleFunc("/api/assignments", h.List).Methods("GET")

	rr := doJSON(t, r, http.MethodGet, "/api/assignments", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}
