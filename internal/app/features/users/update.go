// internal/app/features/users/update.go
package users

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// updateRequest mirrors the mutable user fields. Absent fields are left
// untouched; "promotion": null un-enrolls the student. A "password" key
// in the body is ignored: credentials do not change through this route.
type updateRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Phone     *string `json:"phone"`
	Promotion *string `json:"promotion"`
}

// ServeUpdate handles PUT /api/users/{id} (directeur only).
func (h *Handler) ServeUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		httpx.BadRequest(w, err)
		return
	}
	var req updateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	// a "promotion" key set to null means un-enroll, absent means untouched
	var keys map[string]json.RawMessage
	_ = json.Unmarshal(body, &keys)
	_, promotionSet := keys["promotion"]

	mut := userstore.UpdateFields{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Phone: req.Phone,
	}
	if promotionSet {
		if req.Promotion == nil || *req.Promotion == "" {
			mut.ClearPromotion = true
		} else {
			promoID, err := primitive.ObjectIDFromHex(*req.Promotion)
			if err != nil {
				httpx.Error(w, http.StatusBadRequest, "Invalid promotion")
				return
			}
			mut.Promotion = &promoID
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update user")
	defer cancel()

	updated, err := userstore.New(h.DB).Update(ctx, id, mut)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			httpx.NotFound(w)
		case errors.Is(err, userstore.ErrDuplicateEmail):
			httpx.Error(w, http.StatusBadRequest, "Email already in use")
		default:
			httpx.DomainError(w, h.Log, "update user", err)
		}
		return
	}

	httpx.Respond(w, http.StatusOK, updated)
}
