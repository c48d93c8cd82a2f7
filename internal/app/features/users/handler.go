// internal/app/features/users/handler.go

// Package users serves the job-seeker endpoints: profile resolution and
// updates, resume upload, applying to jobs, and application history.
//
// Seekers are authenticated upstream by the identity provider; requests
// carry the provider's stable user ID in the body, and unknown IDs are
// lazily provisioned when the provider also supplied name, email, and
// avatar (a fallback for missed webhook events).
package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	appstore "github.com/Dhivanan46/Hire-hub/internal/app/store/applications"
	userstore "github.com/Dhivanan46/Hire-hub/internal/app/store/users"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/apiutil"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/limits"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/storage"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/timeouts"
	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

// Handler serves seeker endpoints.
type Handler struct {
	users        *userstore.Store
	applications *appstore.Store
	files        storage.Store
	logger       *zap.Logger
}

// New returns a users Handler.
func New(users *userstore.Store, applications *appstore.Store, files storage.Store, logger *zap.Logger) *Handler {
	return &Handler{users: users, applications: applications, files: files, logger: logger}
}

type identityFields struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Image  string `json:"image"`
}

// Profile resolves the seeker's record, creating it when the identity
// provider supplied a full set of fields for an unknown ID.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	var req identityFields
	if err := apiutil.DecodeJSON(w, r, &req); err != nil {
		apiutil.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		apiutil.Fail(w, http.StatusBadRequest, "userId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.users.Resolve(ctx, req.UserID, req.Name, req.Email, req.Image)
	if err != nil {
		h.failResolve(w, req.UserID, err)
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

type updateProfileRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Resume string `json:"resume"`
}

// UpdateProfile sets the seeker's display name and, optionally, a resume URL.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := apiutil.DecodeJSON(w, r, &req); err != nil {
		apiutil.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" || req.Name == "" {
		apiutil.Fail(w, http.StatusBadRequest, "userId and name are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.users.UpdateProfile(ctx, req.UserID, req.Name, req.Resume)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apiutil.Fail(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("update profile failed", zap.String("user_id", req.UserID), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

// UploadResume accepts a PDF, stores it, and records its URL on the seeker.
// The multipart form fields mirror Profile for lazy provisioning.
func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxMultipartBodySize)
	if err := r.ParseMultipartForm(limits.MaxUploadSize); err != nil {
		apiutil.Fail(w, http.StatusBadRequest, "invalid or oversized upload")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	userID := r.FormValue("userId")
	if userID == "" {
		apiutil.Fail(w, http.StatusBadRequest, "userId is required")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		apiutil.Fail(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Size > limits.MaxUploadSize {
		apiutil.Fail(w, http.StatusBadRequest, "File too large")
		return
	}
	if header.Header.Get("Content-Type") != limits.ResumeContentType {
		apiutil.Fail(w, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	user, err := h.users.Resolve(ctx, userID, r.FormValue("name"), r.FormValue("email"), r.FormValue("image"))
	if err != nil {
		h.failResolve(w, userID, err)
		return
	}

	key := fmt.Sprintf("resumes/%s-%d-%s", user.ID, time.Now().UnixMilli(), storage.SanitizeFilename(header.Filename))
	if err := h.files.Put(ctx, key, file, &storage.PutOptions{ContentType: limits.ResumeContentType}); err != nil {
		h.logger.Error("resume upload failed", zap.String("user_id", user.ID), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to store resume")
		return
	}

	updated, err := h.users.SetResume(ctx, user.ID, h.files.URL(key))
	if err != nil {
		h.logger.Error("persist resume url failed", zap.String("user_id", user.ID), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to save resume")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Resume uploaded successfully",
		"resumeUrl": updated.Resume,
		"user":      updated,
	})
}

type applyRequest struct {
	UserID      string `json:"userId"`
	JobID       string `json:"jobId"`
	CompanyID   string `json:"companyId"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
}

// Apply creates a Pending application, requiring a resume on file and no
// prior application for the same job.
func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := apiutil.DecodeJSON(w, r, &req); err != nil {
		apiutil.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" || req.JobID == "" {
		apiutil.Fail(w, http.StatusBadRequest, "userId and jobId are required")
		return
	}

	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		apiutil.Fail(w, http.StatusNotFound, "Job not found")
		return
	}
	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		apiutil.Fail(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apiutil.Fail(w, http.StatusNotFound, "User not found")
			return
		}
		h.logger.Error("apply: load user failed", zap.String("user_id", req.UserID), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to apply")
		return
	}
	if !user.HasResume() {
		apiutil.Fail(w, http.StatusBadRequest, "Please upload your resume before applying")
		return
	}

	app := &models.JobApplication{
		UserID:      user.ID,
		JobID:       jobID,
		CompanyID:   companyID,
		JobTitle:    req.JobTitle,
		CompanyName: req.CompanyName,
		Location:    req.Location,
	}
	if err := h.applications.Create(ctx, app); err != nil {
		if errors.Is(err, appstore.ErrAlreadyApplied) {
			apiutil.Fail(w, http.StatusBadRequest, "You have already applied for this job")
			return
		}
		h.logger.Error("apply: create application failed",
			zap.String("user_id", user.ID), zap.String("job_id", jobID.Hex()), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to apply")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Applied successfully",
		"application": app,
	})
}

type applicationsRequest struct {
	UserID string `json:"userId"`
}

// Applications lists the seeker's applications with status counts.
func (h *Handler) Applications(w http.ResponseWriter, r *http.Request) {
	var req applicationsRequest
	if err := apiutil.DecodeJSON(w, r, &req); err != nil {
		apiutil.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.UserID == "" {
		apiutil.Fail(w, http.StatusBadRequest, "userId is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	apps, err := h.applications.ListByUser(ctx, req.UserID)
	if err != nil {
		h.logger.Error("list applications failed", zap.String("user_id", req.UserID), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to load applications")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success":      true,
		"applications": apps,
		"stats":        appstore.CountByStatus(apps),
	})
}

func (h *Handler) failResolve(w http.ResponseWriter, userID string, err error) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		apiutil.Fail(w, http.StatusNotFound, "User not found")
	case errors.Is(err, userstore.ErrDuplicateEmail):
		apiutil.Fail(w, http.StatusBadRequest, "Email already in use")
	default:
		h.logger.Error("resolve user failed", zap.String("user_id", userID), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to load user")
	}
}
