// internal/app/features/webhooks/routes.go
package webhooks

import "github.com/go-chi/chi/v5"

// Routes returns the webhook receiver router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Receive)
	return r
}
