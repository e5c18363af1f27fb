// internal/app/features/works/create.go
package works

import (
	"net/http"
	"time"

	"github.com/gasaunivers/campushub/internal/app/policy/workpolicy"
	workstore "github.com/gasaunivers/campushub/internal/app/store/works"
	"github.com/gasaunivers/campushub/internal/app/system/authz"
	"github.com/gasaunivers/campushub/internal/app/system/httpx"
	"github.com/gasaunivers/campushub/internal/app/system/timeouts"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Promotion   string     `json:"promotion"`
	Assignees   []string   `json:"assignees"`
	GroupName   string     `json:"groupName"`
}

// ServeCreate handles POST /api/works. Only formateurs and directeurs
// may create; the caller becomes the work's owner.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpx.Unauthorized(w)
		return
	}
	if !workpolicy.CanCreate(r) {
		httpx.Forbidden(w)
		return
	}

	var req createRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.BadRequest(w, err)
		return
	}

	assignees, err := parseObjectIDs(req.Assignees)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid assignees")
		return
	}

	work := models.Work{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		CreatedBy:   userID,
		Assignees:   assignees,
	}
	if req.StartDate != nil {
		work.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		work.EndDate = *req.EndDate
	}
	if req.Promotion != "" {
		promoID, err := primitive.ObjectIDFromHex(req.Promotion)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid promotion")
			return
		}
		work.PromotionID = &promoID
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create work")
	defer cancel()

	created, err := workstore.New(h.DB).Create(ctx, work, req.GroupName)
	if err != nil {
		httpx.DomainError(w, h.Log, "create work", err)
		return
	}

	httpx.Respond(w, http.StatusCreated, created)
}

// parseObjectIDs converts the wire's hex strings. One bad ID fails the
// whole list.
func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(hexes))
	for _, hex := range hexes {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
