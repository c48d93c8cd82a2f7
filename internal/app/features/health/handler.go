// internal/app/features/health/handler.go

// Package health exposes the liveness endpoint used by deployment probes.
package health

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/Dhivanan46/Hire-hub/internal/app/system/apiutil"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/timeouts"
)

// Handler reports service health.
type Handler struct {
	client *mongo.Client
	logger *zap.Logger
}

// New returns a health Handler that pings client.
func New(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{client: client, logger: logger}
}

// Check pings the database and reports the result.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.client.Ping(ctx, nil); err != nil {
		h.logger.Error("health check: mongo ping failed", zap.Error(err))
		apiutil.Fail(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}

	apiutil.Respond(w, http.StatusOK, map[string]any{
		"success": true,
		"status":  "ok",
	})
}
