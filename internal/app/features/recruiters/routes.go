// internal/app/features/recruiters/routes.go
package recruiters

import (
	"github.com/go-chi/chi/v5"

	"github.com/Dhivanan46/Hire-hub/internal/app/system/token"
)

// Routes returns the recruiter API router. Profile sits behind the bearer
// middleware; registration and login are open.
func Routes(h *Handler, tokens *token.Manager) chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(tokens.RequireRecruiter)
		r.Get("/profile", h.Profile)
	})
	return r
}
