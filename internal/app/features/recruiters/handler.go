// internal/app/features/recruiters/handler.go

// Package recruiters serves recruiter account endpoints: registration with
// an optional logo upload, login, and the token-protected profile.
package recruiters

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	recruiterstore "github.com/Dhivanan46/Hire-hub/internal/app/store/recruiters"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/apiutil"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/limits"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/storage"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/timeouts"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/token"
	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

// Handler serves recruiter endpoints.
type Handler struct {
	recruiters *recruiterstore.Store
	tokens     *token.Manager
	files      storage.Store
	logger     *zap.Logger
}

// New returns a recruiters Handler.
func New(recruiters *recruiterstore.Store, tokens *token.Manager, files storage.Store, logger *zap.Logger) *Handler {
	return &Handler{recruiters: recruiters, tokens: tokens, files: files, logger: logger}
}

// Register creates a recruiter account from a multipart form (name, email,
// password, optional image logo) and returns a bearer token.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
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

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	if name == "" || email == "" || password == "" {
		apiutil.Fail(w, http.StatusBadRequest, "Missing details")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Logo goes to storage first so a failed upload never leaves an
	// account without its image.
	imageURL := ""
	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()

		if header.Size > limits.MaxUploadSize {
			apiutil.Fail(w, http.StatusBadRequest, "File too large")
			return
		}
		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, limits.ImageContentTypePrefix) {
			apiutil.Fail(w, http.StatusBadRequest, "Only image files are allowed")
			return
		}

		now := time.Now().UTC()
		key := fmt.Sprintf("recruiter-logos/%04d/%02d/%s-%s",
			now.Year(), now.Month(), uuid.NewString()[:8], storage.SanitizeFilename(header.Filename))
		if err := h.files.Put(ctx, key, file, &storage.PutOptions{ContentType: contentType}); err != nil {
			h.logger.Error("logo upload failed", zap.Error(err))
			apiutil.Fail(w, http.StatusInternalServerError, "failed to store logo")
			return
		}
		imageURL = h.files.URL(key)
	}

	rec, err := h.recruiters.Create(ctx, name, email, password, imageURL)
	if err != nil {
		if errors.Is(err, recruiterstore.ErrDuplicateEmail) {
			apiutil.Fail(w, http.StatusBadRequest, "Recruiter already exists with this email")
			return
		}
		h.logger.Error("register recruiter failed", zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to register")
		return
	}

	h.respondWithToken(w, rec)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a bearer token. Unknown email and
// wrong password produce the same response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := apiutil.DecodeJSON(w, r, &req); err != nil {
		apiutil.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		apiutil.Fail(w, http.StatusBadRequest, "Missing details")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.recruiters.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, recruiterstore.ErrInvalidCredentials) {
			apiutil.Fail(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.respondWithToken(w, rec)
}

// Profile returns the summary for the recruiter identified by the bearer
// token.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := token.ClaimsFrom(r)
	if !ok {
		apiutil.Fail(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rec, err := h.recruiters.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			apiutil.Fail(w, http.StatusNotFound, "Recruiter not found")
			return
		}
		h.logger.Error("load recruiter profile failed", zap.String("recruiter_id", claims.Subject), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success":   true,
		"recruiter": rec.Summary(),
	})
}

func (h *Handler) respondWithToken(w http.ResponseWriter, rec *models.Recruiter) {
	signed, err := h.tokens.Issue(rec.ID.Hex(), rec.Email)
	if err != nil {
		h.logger.Error("issue token failed", zap.String("recruiter_id", rec.ID.Hex()), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success":   true,
		"token":     signed,
		"recruiter": rec.Summary(),
	})
}
