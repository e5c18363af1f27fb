// internal/app/features/works/resolve.go
package works

import (
	"context"
	"errors"
	"time"

	promotionstore "github.com/gasaunivers/campushub/internal/app/store/promotions"
	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// batchView is an AssignmentBatch with its member IDs swapped for the
// full user documents.
type batchView struct {
	Assignees []models.User `json:"assignees"`
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	GroupName string        `json:"groupName,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// workView is a Work with assignees, promotion and per-batch members
// resolved to full documents, the shape detail reads return.
type workView struct {
	models.Work
	Assignees   []models.User     `json:"assignees"`
	Promotion   *models.Promotion `json:"promotion,omitempty"`
	Assignments []batchView       `json:"assignments"`
}

// resolveWork joins the work's user and promotion references in two
// batch reads. Dangling references resolve to nothing rather than
// failing the read: a deleted étudiant simply drops out of the lists.
func (h *Handler) resolveWork(ctx context.Context, w models.Work) (workView, error) {
	idSet := make(map[primitive.ObjectID]struct{})
	for _, id := range w.Assignees {
		idSet[id] = struct{}{}
	}
	for _, b := range w.Assignments {
		for _, id := range b.Assignees {
			idSet[id] = struct{}{}
		}
	}

	byID := make(map[primitive.ObjectID]models.User)
	if len(idSet) > 0 {
		ids := make([]primitive.ObjectID, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		members, err := userstore.New(h.DB).GetByIDs(ctx, ids)
		if err != nil {
			return workView{}, err
		}
		for _, u := range members {
			byID[u.ID] = u
		}
	}

	lookup := func(ids []primitive.ObjectID) []models.User {
		out := make([]models.User, 0, len(ids))
		for _, id := range ids {
			if u, ok := byID[id]; ok {
				out = append(out, u)
			}
		}
		return out
	}

	view := workView{
		Work:        w,
		Assignees:   lookup(w.Assignees),
		Assignments: make([]batchView, 0, len(w.Assignments)),
	}
	for _, b := range w.Assignments {
		view.Assignments = append(view.Assignments, batchView{
			Assignees: lookup(b.Assignees),
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
			GroupName: b.GroupName,
			CreatedAt: b.CreatedAt,
		})
	}

	if w.PromotionID != nil {
		promo, err := promotionstore.New(h.DB).GetByID(ctx, *w.PromotionID)
		switch {
		case err == nil:
			view.Promotion = &promo
		case errors.Is(err, mongo.ErrNoDocuments):
			// dangling reference, leave promotion null
		default:
			return workView{}, err
		}
	}

	return view, nil
}
