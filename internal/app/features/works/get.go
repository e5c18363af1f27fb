// internal/app/features/works/get.go
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

// ServeGet handles GET /api/works/{id}. Only the creator or a
// directeur may read; assignees, batch members and the promotion come
// back resolved. Reading never mutates the work.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "get work")
	defer cancel()

	work, err := workstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w)
			return
		}
		httpx.ServerError(w, h.Log, "get work", err)
		return
	}
	if !workpolicy.CanAccess(r, work.CreatedBy) {
		httpx.Forbidden(w)
		return
	}

	view, err := h.resolveWork(ctx, work)
	if err != nil {
		httpx.ServerError(w, h.Log, "get work: resolve", err)
		return
	}

	httpx.Respond(w, http.StatusOK, view)
}
