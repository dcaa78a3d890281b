package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/ciphersql/studio/api"
	dbfs "github.com/ciphersql/studio/db"
	"github.com/ciphersql/studio/internal/config"
	dbpkg "github.com/ciphersql/studio/internal/db"
	"github.com/ciphersql/studio/pkg/models"
)

// setupServer wires the real router against a seeded in-memory database,
// with hints disabled.
func setupServer(t *testing.T) (*mux.Router, func()) {
	t.Helper()
	ctx := context.Background()

	d, err := dbpkg.New(ctx, fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		d.Close()
		t.Fatalf("migrate: %v", err)
	}
	if err := dbpkg.Seed(ctx, d, dbfs.SeedFiles); err != nil {
		d.Close()
		t.Fatalf("seed: %v", err)
	}

	cfg := &config.Config{
		Addr:          ":0",
		JWTSecret:     testSecret,
		APITimeout:    5 * time.Second,
		DatabasePath:  ":memory:",
		TokenDuration: time.Hour,
	}

	r := api.SetupRoutes(cfg, "test", "now", d, nil)
	return r, func() { d.Close() }
}

func TestCatalogOrderEndToEnd(t *testing.T) {
	r, cleanup := setupServer(t)
	defer cleanup()

	rr := doJSON(t, r, http.MethodGet, "/api/assignments", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}

	var got []models.Assignment
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal catalog: %v", err)
	}

	// both Beginners alphabetically, then the Intermediates
	wantTitles := []string{
		"Customer Directory Cleanup",
		"Inventory Low-Stock Alert",
		"Employee Performance Review",
		"High Value Orders Analysis",
	}
	if len(got) != len(wantTitles) {
		t.Fatalf("catalog size = %d, want %d", len(got), len(wantTitles))
	}
	for i, want := range wantTitles {
		if got[i].Title != want {
			t.Fatalf("position %d: %q, want %q", i, got[i].Title, want)
		}
	}
	if got[0].Schemas[0].TableName != "users" {
		t.Fatalf("schemas not decoded: %+v", got[0].Schemas)
	}
}

func TestExecuteAndStatsEndToEnd(t *testing.T) {
	r, cleanup := setupServer(t)
	defer cleanup()

	email := "alice@example.com"

	// a real query against the seeded products sandbox table
	body := map[string]string{
		"sql":           "SELECT product_name FROM products WHERE stock < 20 AND category = 'Electronics' ORDER BY product_name",
		"user_email":    email,
		"assignment_id": "1-2",
	}
	rr := doJSON(t, r, http.MethodPost, "/api/execute", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("execute status = %d (body: %s)", rr.Code, rr.Body.String())
	}

	var res struct {
		Rows     []map[string]any `json:"rows"`
		RowCount int              `json:"rowCount"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if res.RowCount != 2 {
		t.Fatalf("rowCount = %d, want 2 (%+v)", res.RowCount, res.Rows)
	}
	if res.Rows[0]["product_name"] != "MacBook Pro" {
		t.Fatalf("first row = %+v", res.Rows[0])
	}

	// the side-effect attempt is visible in the history
	rr = doJSON(t, r, http.MethodGet, "/api/attempts/"+email, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("attempts status = %d", rr.Code)
	}
	var attempts []models.Attempt
	if err := json.Unmarshal(rr.Body.Bytes(), &attempts); err != nil {
		t.Fatalf("unmarshal attempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].AssignmentID != "1-2" || !attempts[0].IsSuccess {
		t.Fatalf("unexpected attempts: %+v", attempts)
	}

	// and in the derived stats
	rr = doJSON(t, r, http.MethodGet, "/api/user/stats/"+email, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("stats status = %d", rr.Code)
	}
	var st models.UserStats
	if err := json.Unmarshal(rr.Body.Bytes(), &st); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if st.SolvedCount != 1 || st.XP != 500 || st.Rank != "Beginner" || st.Progress != 25 || st.Streak != 1 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestExecuteForbiddenEndToEnd(t *testing.T) {
	r, cleanup := setupServer(t)
	defer cleanup()

	rr := doJSON(t, r, http.MethodPost, "/api/execute", map[string]string{"sql": "DROP TABLE products"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	// the sandbox table is untouched
	rr = doJSON(t, r, http.MethodPost, "/api/execute", map[string]string{"sql": "SELECT COUNT(*) AS n FROM products"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
}

func TestRegisterLoginAndMeEndToEnd(t *testing.T) {
	r, cleanup := setupServer(t)
	defer cleanup()

	reg := map[string]string{"name": "Alice", "email": "alice@example.com", "password": "s3cret"}
	rr := doJSON(t, r, http.MethodPost, "/api/auth/register", reg)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register status = %d (body: %s)", rr.Code, rr.Body.String())
	}

	// duplicate registration conflicts and creates no second account
	rr = doJSON(t, r, http.MethodPost, "/api/auth/register", reg)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@example.com", "password": "wrong"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", rr.Code)
	}

	rr = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"email": "alice@example.com", "password": "s3cret"})
	if rr.Code != http.StatusOK {
		t.Fatalf("login status = %d (body: %s)", rr.Code, rr.Body.String())
	}
	var auth struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &auth); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}

	// the protected profile endpoint requires the token
	req := doJSON(t, r, http.MethodGet, "/api/user/me", nil)
	if req.Code != http.StatusUnauthorized {
		t.Fatalf("me without token status = %d, want 401", req.Code)
	}

	httpReq := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	httpReq.Header.Set("Authorization", "Bearer "+auth.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httpReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d (body: %s)", rec.Code, rec.Body.String())
	}
	var me map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("unmarshal me: %v", err)
	}
	if me["email"] != "alice@example.com" || me["role"] != "student" {
		t.Fatalf("unexpected profile: %v", me)
	}
}

func TestHintDisabledEndToEnd(t *testing.T) {
	r, cleanup := setupServer(t)
	defer cleanup()

	rr := doJSON(t, r, http.MethodPost, "/api/hint", hintBody())
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}
