// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Index creation is idempotent when the
name and key pattern match what already exists, so re-running on every
boot is safe. Errors are aggregated so any problem is visible and
startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db, logger); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensurePromotions(ctx, db, logger); err != nil {
		problems = append(problems, "promotions: "+err.Error())
	}
	if err := ensureWorks(ctx, db, logger); err != nil {
		problems = append(problems, "works: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel, logger *zap.Logger) error {
	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		logger.Info("ensuring index",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			// student-of-promotion lookups
			Keys:    bson.D{{Key: "promotion", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetName("promotion_role"),
		},
	}, logger)
}

func ensurePromotions(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("promotions"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "label", Value: 1}, {Key: "year", Value: 1}},
			Options: options.Index().SetName("uniq_label_year").SetUnique(true),
		},
	}, logger)
}

func ensureWorks(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("works"), []mongo.IndexModel{
		{
			// listMyWorks: createdBy filter, newest first
			Keys:    bson.D{{Key: "created_by", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_by_created_at"),
		},
	}, logger)
}
