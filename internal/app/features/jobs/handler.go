// internal/app/features/jobs/handler.go

// Package jobs serves the public job-board endpoints: listing, single-job
// lookup, and posting.
package jobs

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	jobstore "github.com/Dhivanan46/Hire-hub/internal/app/store/jobs"
	recruiterstore "github.com/Dhivanan46/Hire-hub/internal/app/store/recruiters"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/apiutil"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/htmlsanitize"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/timeouts"
	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

// Handler serves job endpoints.
type Handler struct {
	jobs       *jobstore.Store
	recruiters *recruiterstore.Store
	logger     *zap.Logger
}

// New returns a jobs Handler. The recruiter store backs the company
// snapshot lookup on job creation.
func New(jobs *jobstore.Store, recruiters *recruiterstore.Store, logger *zap.Logger) *Handler {
	return &Handler{jobs: jobs, recruiters: recruiters, logger: logger}
}

// List returns all visible jobs, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	listed, err := h.jobs.ListVisible(ctx)
	if err != nil {
		h.logger.Error("list jobs failed", zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to load jobs")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"jobs":    listed,
	})
}

// Get returns one job by id, visible or not.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apiutil.Fail(w, http.StatusNotFound, "Job not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	job, err := h.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apiutil.Fail(w, http.StatusNotFound, "Job not found")
			return
		}
		h.logger.Error("get job failed", zap.String("job_id", id.Hex()), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to load job")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"job":     job,
	})
}

type createRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Category    string  `json:"category"`
	Level       string  `json:"level"`
	Salary      float64 `json:"salary"`

	CompanyID    string `json:"companyId"`
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	CompanyImage string `json:"companyImage"`
}

// Create posts a new job. The company snapshot comes from the request when
// supplied, otherwise from the recruiter record behind companyId.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := apiutil.DecodeJSON(w, r, &req); err != nil {
		apiutil.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Title == "" || req.Description == "" || req.CompanyID == "" {
		apiutil.Fail(w, http.StatusBadRequest, "Missing details")
		return
	}
	if req.Salary < 0 {
		apiutil.Fail(w, http.StatusBadRequest, "Salary must be non-negative")
		return
	}

	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		apiutil.Fail(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	company := models.CompanyRef{
		ID:    companyID,
		Name:  req.CompanyName,
		Email: req.CompanyEmail,
		Image: req.CompanyImage,
	}
	if company.Name == "" {
		if rec, err := h.recruiters.GetByID(ctx, req.CompanyID); err == nil {
			company.Name = rec.Name
			company.Email = rec.Email
			company.Image = rec.Image
		}
	}

	job := &models.Job{
		Title:       req.Title,
		Description: htmlsanitize.Sanitize(req.Description),
		Location:    req.Location,
		Category:    req.Category,
		Level:       req.Level,
		Salary:      req.Salary,
		Company:     company,
		Visible:     true,
	}
	if err := h.jobs.Create(ctx, job); err != nil {
		h.logger.Error("create job failed", zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to create job")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Job created successfully",
		"job":     job,
	})
}
