package apiutil_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dhivanan46/Hire-hub/internal/app/system/apiutil"
)

func TestFail_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	apiutil.Fail(rec, http.StatusNotFound, "Job not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Success {
		t.Error("expected success=false")
	}
	if body.Message != "Job not found" {
		t.Errorf("message: got %q, want %q", body.Message, "Job not found")
	}
}

func TestDecodeJSON_Valid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"userId":"u1"}`))
	rec := httptest.NewRecorder()

	var dst struct {
		UserID string `json:"userId"`
	}
	if err := apiutil.DecodeJSON(rec, req, &dst); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if dst.UserID != "u1" {
		t.Errorf("UserID: got %q, want %q", dst.UserID, "u1")
	}
}

func TestDecodeJSON_Invalid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	var dst map[string]any
	if err := apiutil.DecodeJSON(rec, req, &dst); err == nil {
		t.Error("expected error for malformed body")
	}
}
