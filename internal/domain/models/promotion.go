// internal/domain/models/promotion.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Promotion is an academic cohort/intake year. Students reference it
// via User.PromotionID; works may target one via Work.PromotionID.
type Promotion struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Label   string             `bson:"label" json:"label"`
	LabelCI string             `bson:"label_ci" json:"-"` // lowercase, diacritics-stripped
	Year    int                `bson:"year" json:"year"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
