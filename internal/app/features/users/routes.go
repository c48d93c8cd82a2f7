// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns the seeker API router.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/profile", h.Profile)
	r.Post("/update-profile", h.UpdateProfile)
	r.Post("/upload-resume", h.UploadResume)
	r.Post("/apply", h.Apply)
	r.Post("/applications", h.Applications)
	return r
}
