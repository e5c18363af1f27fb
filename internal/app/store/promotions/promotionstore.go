// internal/app/store/promotions/promotionstore.go
package promotionstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/gasaunivers/campushub/internal/app/system/normalize"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicatePromotion reports a (label, year) pair that already
// exists; the pair carries a unique index.
var ErrDuplicatePromotion = errors.New("Promotion already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("promotions")}
}

// Create inserts a new promotion.
func (s *Store) Create(ctx context.Context, p models.Promotion) (models.Promotion, error) {
	p.ID = primitive.NewObjectID()
	p.Label = normalize.Label(p.Label)
	p.LabelCI = text.Fold(p.Label)
	p.CreatedAt = time.Now().UTC()

	if p.Label == "" || p.Year == 0 {
		return models.Promotion{}, models.ErrMissingFields
	}

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Promotion{}, ErrDuplicatePromotion
		}
		return models.Promotion{}, err
	}
	return p, nil
}

// GetByID returns a promotion by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Promotion, error) {
	var p models.Promotion
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		return models.Promotion{}, err
	}
	return p, nil
}

// GetByIDs returns the promotions whose IDs appear in ids. Unknown IDs
// are skipped, not errors.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Promotion, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Promotion
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all promotions, most recent year first.
func (s *Store) List(ctx context.Context) ([]models.Promotion, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "year", Value: -1}, {Key: "label", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Promotion
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a promotion by ID. Returns the number of documents
// deleted (0 or 1). Unsetting the reference on enrolled students is
// the users store's job; callers sequence the two.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
