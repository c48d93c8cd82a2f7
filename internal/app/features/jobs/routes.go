// internal/app/features/jobs/routes.go
package jobs

import "github.com/go-chi/chi/v5"

// Routes returns the public jobs router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/create", h.Create)
	return r
}
