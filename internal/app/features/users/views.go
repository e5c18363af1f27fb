// internal/app/features/users/views.go
package users

import (
	"context"

	promotionstore "github.com/gasaunivers/campushub/internal/app/store/promotions"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userView is a User with its promotion reference swapped for the full
// promotion document, the shape the SPA renders.
type userView struct {
	models.User
	Promotion *models.Promotion `json:"promotion,omitempty"`
}

// resolvePromotions builds views for the given users, batch-fetching
// the referenced promotions. A dangling reference leaves the promotion
// null rather than failing the read.
func (h *Handler) resolvePromotions(ctx context.Context, users []models.User) ([]userView, error) {
	idSet := make(map[primitive.ObjectID]struct{})
	for _, u := range users {
		if u.PromotionID != nil {
			idSet[*u.PromotionID] = struct{}{}
		}
	}

	byID := make(map[primitive.ObjectID]models.Promotion)
	if len(idSet) > 0 {
		ids := make([]primitive.ObjectID, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		promos, err := promotionstore.New(h.DB).GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, p := range promos {
			byID[p.ID] = p
		}
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		v := userView{User: u}
		if u.PromotionID != nil {
			if p, ok := byID[*u.PromotionID]; ok {
				promo := p
				v.Promotion = &promo
			}
		}
		views = append(views, v)
	}
	return views, nil
}
