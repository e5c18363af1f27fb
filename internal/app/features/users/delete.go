// internal/app/features/users/delete.go
package users

import (
	"net/http"

	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeDelete handles DELETE /api/users/{id} (directeur only).
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete user")
	defer cancel()

	n, err := userstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		httpx.ServerError(w, h.Log, "delete user", err)
		return
	}
	if n == 0 {
		httpx.NotFound(w)
		return
	}

	httpx.Respond(w, http.StatusOK, map[string]bool{"ok": true})
}
