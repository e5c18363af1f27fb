// internal/app/features/works/delete.go
package works

import (
	"errors"
	"net/http"

	"github.com/gasaunivers/campushub/internal/app/policy/workpolicy"
	workstore "github.com/gasaunivers/campushub/internal/app/store/works"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeDelete handles DELETE /api/works/{id} (creator or directeur).
// Responds {"ok":true} on success.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete work")
	defer cancel()

	store := workstore.New(h.DB)
	work, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w)
			return
		}
		httpx.ServerError(w, h.Log, "delete work: load", err)
		return
	}
	if !workpolicy.CanAccess(r, work.CreatedBy) {
		httpx.Forbidden(w)
		return
	}

	if _, err := store.Delete(ctx, id); err != nil {
		httpx.ServerError(w, h.Log, "delete work", err)
		return
	}

	httpx.Respond(w, http.StatusOK, map[string]bool{"ok": true})
}
