// internal/app/features/auth/routes.go
package auth

import "github.com/go-chi/chi/v5"

// Routes mounts the credential endpoints (typically under "/api/auth").
// Both are public: login and register issue the bearer token the rest
// of the API requires.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.ServeLogin)
	r.Post("/register", h.ServeRegister)
	return r
}
