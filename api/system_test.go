package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ciphersql/studio/api"
)

func TestHealthHandler(t *testing.T) {
	h := &api.SystemHandler{}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.HealthHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["status"] != "ok" || resp["service"] != "studio" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestVersionHandler(t *testing.T) {
	h := &api.SystemHandler{}
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rr := httptest.NewRecorder()
	h.VersionHandler("1.2.3", "2026-01-01")(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["version"] != "1.2.3" || resp["buildTime"] != "2026-01-01" {
		t.Fatalf("unexpected body: %v", resp)
	}
}
