// internal/app/features/works/assign.go
package works

import (
	"errors"
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

type assignRequest struct {
	Assignees *[]string  `json:"assignees"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	GroupName string     `json:"groupName"`
}

// ServeAssign handles POST /api/works/{id}/assign (creator or
// directeur). Appends a dated batch; omitting assignees re-assigns the
// work's current flattened membership, while an explicit empty list is
// validated like any other selection. The response is the updated work
// with references resolved.
func (h *Handler) ServeAssign(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpx.NotFound(w)
		return
	}

	var req assignRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err)
		return
	}
	if req.StartDate == nil || req.EndDate == nil {
		httpx.Error(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	var assignees []primitive.ObjectID
	if req.Assignees != nil {
		assignees, err = parseObjectIDs(*req.Assignees)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid assignees")
			return
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "assign work")
	defer cancel()

	store := workstore.New(h.DB)
	work, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w)
			return
		}
		httpx.ServerError(w, h.Log, "assign work: load", err)
		return
	}
	if !workpolicy.CanAccess(r, work.CreatedBy) {
		httpx.Forbidden(w)
		return
	}

	updated, err := store.AppendAssignment(ctx, id, assignees, *req.StartDate, *req.EndDate, req.GroupName)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpx.NotFound(w)
			return
		}
		httpx.DomainError(w, h.Log, "assign work", err)
		return
	}

	view, err := h.resolveWork(ctx, updated)
	if err != nil {
		httpx.ServerError(w, h.Log, "assign work: resolve", err)
		return
	}

	httpx.Respond(w, http.StatusOK, view)
}
