// internal/app/features/webhooks/handler.go

// Package webhooks receives identity-provider events and keeps the local
// user collection in sync, so the lazy provisioning in the seeker endpoints
// stays a fallback rather than the primary path.
package webhooks

import (
	"context"
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"

	userstore "github.com/Dhivanan46/Hire-hub/internal/app/store/users"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/apiutil"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/timeouts"
	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

// Event types delivered by the identity provider.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// SecretHeader carries the shared webhook secret.
const SecretHeader = "X-Webhook-Secret"

// Handler processes identity-provider webhook deliveries.
type Handler struct {
	users  *userstore.Store
	secret string
	logger *zap.Logger
}

// New returns a webhooks Handler. With an empty secret, deliveries are
// accepted without verification (development only).
func New(users *userstore.Store, secret string, logger *zap.Logger) *Handler {
	return &Handler{users: users, secret: secret, logger: logger}
}

type event struct {
	Type string `json:"type"`
	Data struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Image string `json:"image"`
	} `json:"data"`
}

// Receive applies one event. Unknown event types are acknowledged and
// ignored so the provider does not retry them.
func (h *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" {
		supplied := r.Header.Get(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(h.secret)) != 1 {
			apiutil.Fail(w, http.StatusUnauthorized, "invalid webhook secret")
			return
		}
	}

	var ev event
	if err := apiutil.DecodeJSON(w, r, &ev); err != nil {
		apiutil.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if ev.Data.ID == "" {
		apiutil.Fail(w, http.StatusBadRequest, "event data missing user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var err error
	switch ev.Type {
	case EventUserCreated, EventUserUpdated:
		err = h.users.Upsert(ctx, &models.User{
			ID:    ev.Data.ID,
			Name:  ev.Data.Name,
			Email: ev.Data.Email,
			Image: ev.Data.Image,
		})
	case EventUserDeleted:
		err = h.users.Delete(ctx, ev.Data.ID)
	default:
		h.logger.Info("ignoring webhook event", zap.String("type", ev.Type))
	}
	if err != nil {
		h.logger.Error("webhook event failed",
			zap.String("type", ev.Type), zap.String("user_id", ev.Data.ID), zap.Error(err))
		apiutil.Fail(w, http.StatusInternalServerError, "failed to process event")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{"success": true})
}
