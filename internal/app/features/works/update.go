// internal/app/features/works/update.go
package works

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gasaunivers/campushub/internal/app/policy/workpolicy"
	workstore "github.com/gasaunivers/campushub/internal/app/store/works"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// updateRequest mirrors the mutable work fields. Absent fields are
// left untouched; assignments and the flattened assignees are never
// edited here - switching to individuel truncates the flat list as a
// side effect of the type change, and new members only arrive through
// the assign endpoint.
type updateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Type        *string    `json:"type"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Promotion   *string    `json:"promotion"`
}

// ServeUpdate handles PUT /api/works/{id} (creator or directeur).
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
	var keys map[string]json.RawMessage
	_ = json.Unmarshal(body, &keys)
	_, promotionSet := keys["promotion"]

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "update work")
	defer cancel()

	store := workstore.New(h.DB)
	work, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w)
			return
		}
		httpx.ServerError(w, h.Log, "update work: load", err)
		return
	}
	if !workpolicy.CanAccess(r, work.CreatedBy) {
		httpx.Forbidden(w)
		return
	}

	mut := workstore.UpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
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

	updated, err := store.Update(ctx, id, mut)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w)
			return
		}
		httpx.DomainError(w, h.Log, "update work", err)
		return
	}

	httpx.Respond(w, http.StatusOK, updated)
}
