// internal/app/features/users/list.go
package users

import (
	"errors"
	"net/http"

	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList handles GET /api/users - all users, promotions resolved.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "list users")
	defer cancel()

	users, err := userstore.New(h.DB).List(ctx)
	if err != nil {
		httpx.ServerError(w, h.Log, "list users", err)
		return
	}

	views, err := h.resolvePromotions(ctx, users)
	if err != nil {
		httpx.ServerError(w, h.Log, "list users: resolve promotions", err)
		return
	}

	httpx.Respond(w, http.StatusOK, views)
}

// ServeGet handles GET /api/users/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get user")
	defer cancel()

	user, err := userstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w)
			return
		}
		httpx.ServerError(w, h.Log, "get user", err)
		return
	}

	views, err := h.resolvePromotions(ctx, []models.User{user})
	if err != nil {
		httpx.ServerError(w, h.Log, "get user: resolve promotion", err)
		return
	}

	httpx.Respond(w, http.StatusOK, views[0])
}
