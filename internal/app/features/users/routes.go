// internal/app/features/users/routes.go
package users

import (
	"github.com/gasaunivers/campushub/internal/app/system/auth"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user administration endpoints (typically under
// "/api/users"). Reads are open to any signed-in caller; mutations are
// restricted to the directeur.
func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeGet)

		pr.Group(func(dr chi.Router) {
			dr.Use(auth.RequireRole(models.RoleDirecteur))

			dr.Post("/", h.ServeCreate)
			dr.Put("/{id}", h.ServeUpdate)
			dr.Delete("/{id}", h.ServeDelete)
		})
	})

	return r
}
