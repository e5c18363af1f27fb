// internal/app/features/promotions/routes.go
package promotions

import (
	"github.com/gasaunivers/campushub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the promotion endpoints (typically under
// "/api/promotions"). Every route requires a signed-in caller.
func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/", h.ServeCreate)
		pr.Get("/{id}", h.ServeGet)
		pr.Delete("/{id}", h.ServeDelete)
		pr.Get("/{id}/students", h.ServeStudents)
	})

	return r
}
