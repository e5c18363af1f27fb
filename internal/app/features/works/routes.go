// internal/app/features/works/routes.go
package works

import (
	"github.com/gasaunivers/campushub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the work endpoints (typically under "/api/works").
// Every route requires a signed-in caller; the finer creator-or-
// directeur checks live in the handlers because they need the
// document's createdBy.
func Routes(h *Handler, tm *auth.TokenManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(tm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/", h.ServeCreate)
		pr.Get("/{id}", h.ServeGet)
		pr.Put("/{id}", h.ServeUpdate)
		pr.Delete("/{id}", h.ServeDelete)
		pr.Post("/{id}/assign", h.ServeAssign)
	})

	return r
}
