package jobs_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	jobsfeature "github.com/Dhivanan46/Hire-hub/internal/app/features/jobs"
	jobstore "github.com/Dhivanan46/Hire-hub/internal/app/store/jobs"
	recruiterstore "github.com/Dhivanan46/Hire-hub/internal/app/store/recruiters"
	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
	"github.com/Dhivanan46/Hire-hub/internal/testutil"
)

func TestList_OnlyVisibleJobs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := jobsfeature.New(jobstore.New(db), recruiterstore.New(db), zap.NewNop())
	router := jobsfeature.Routes(handler)

	rec := testutil.CreateRecruiter(t, db, "pass")
	visible := testutil.CreateJob(t, db, rec)
	testutil.CreateJob(t, db, rec, func(j *models.Job) { j.Visible = false })

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d", w.Code)
	}

	var body struct {
		Success bool `json:"success"`
		Jobs    []struct {
			ID    string `json:"_id"`
			Title string `json:"title"`
		} `json:"jobs"`
	}
	testutil.DecodeBody(t, w.Body, &body)

	if !body.Success {
		t.Error("expected success=true")
	}
	if len(body.Jobs) != 1 {
		t.Fatalf("expected 1 job in listing, got %d", len(body.Jobs))
	}
	if body.Jobs[0].ID != visible.ID.Hex() {
		t.Errorf("listed wrong job: got %s", body.Jobs[0].ID)
	}
}

func TestGet_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := jobsfeature.New(jobstore.New(db), recruiterstore.New(db), zap.NewNop())
	router := jobsfeature.Routes(handler)

	req := httptest.NewRequest("GET", "/64b000000000000000000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusNotFound)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	testutil.DecodeBody(t, w.Body, &body)
	if body.Success || body.Message != "Job not found" {
		t.Errorf("body: %+v", body)
	}
}

func TestCreate_FillsCompanySnapshot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := jobsfeature.New(jobstore.New(db), recruiterstore.New(db), zap.NewNop())
	router := jobsfeature.Routes(handler)

	rec := testutil.CreateRecruiter(t, db, "pass")

	req := testutil.JSONRequest(t, "POST", "/create", map[string]any{
		"title":       "Platform Engineer",
		"description": "<p>Run the platform.</p><script>alert(1)</script>",
		"location":    "Remote",
		"category":    "Programming",
		"level":       "Senior level",
		"salary":      130000,
		"companyId":   rec.ID.Hex(),
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", w.Code, w.Body.String())
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Job     struct {
			Description string `json:"description"`
			Visible     bool   `json:"visible"`
			Company     struct {
				Name string `json:"name"`
			} `json:"companyId"`
		} `json:"job"`
	}
	testutil.DecodeBody(t, w.Body, &body)

	if !body.Success || body.Message != "Job created successfully" {
		t.Errorf("body: %+v", body)
	}
	if !body.Job.Visible {
		t.Error("new jobs must default to visible")
	}
	if body.Job.Company.Name != rec.Name {
		t.Errorf("company snapshot name: got %q, want %q", body.Job.Company.Name, rec.Name)
	}
	if body.Job.Description != "<p>Run the platform.</p>" {
		t.Errorf("description not sanitized: got %q", body.Job.Description)
	}
}

func TestCreate_NegativeSalaryRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := jobsfeature.New(jobstore.New(db), recruiterstore.New(db), zap.NewNop())
	router := jobsfeature.Routes(handler)

	rec := testutil.CreateRecruiter(t, db, "pass")

	req := testutil.JSONRequest(t, "POST", "/create", map[string]any{
		"title":       "Underpaid Engineer",
		"description": "<p>No.</p>",
		"salary":      -1,
		"companyId":   rec.ID.Hex(),
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusBadRequest)
	}
}
