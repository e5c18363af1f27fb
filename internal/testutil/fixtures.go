package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role. The password hash is a
// placeholder; use the user store when the login path is under test.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string, promotionID *primitive.ObjectID) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		Email:        email,
		PasswordHash: "$2a$10$testtesttesttesttesttesttesttesttesttesttesttesttesttest",
		Role:         role,
		PromotionID:  promotionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateDirecteur creates a test director.
func (f *Fixtures) CreateDirecteur(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleDirecteur, nil)
}

// CreateFormateur creates a test formateur.
func (f *Fixtures) CreateFormateur(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleFormateur, nil)
}

// CreateEtudiant creates a test étudiant, optionally in a promotion.
func (f *Fixtures) CreateEtudiant(ctx context.Context, name, email string, promotionID *primitive.ObjectID) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, email, models.RoleEtudiant, promotionID)
}

// CreatePromotion inserts a promotion.
func (f *Fixtures) CreatePromotion(ctx context.Context, label string, year int) models.Promotion {
	f.t.Helper()

	p := models.Promotion{
		ID:        primitive.NewObjectID(),
		Label:     label,
		LabelCI:   text.Fold(label),
		Year:      year,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("promotions").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test promotion: %v", err)
	}
	return p
}

// CreateWork inserts a work with one assignment batch when assignees
// are given, mirroring what the create operation persists.
func (f *Fixtures) CreateWork(ctx context.Context, createdBy primitive.ObjectID, title, workType string, assignees ...primitive.ObjectID) models.Work {
	f.t.Helper()

	now := time.Now().UTC()
	w := models.Work{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Type:        workType,
		StartDate:   now,
		EndDate:     now.AddDate(0, 0, 10),
		CreatedBy:   createdBy,
		Assignees:   assignees,
		Assignments: []models.AssignmentBatch{},
		CreatedAt:   now,
	}
	if len(assignees) > 0 {
		w.Assignments = append(w.Assignments, models.AssignmentBatch{
			Assignees: assignees,
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
			CreatedAt: now,
		})
	}
	if _, err := f.db.Collection("works").InsertOne(ctx, w); err != nil {
		f.t.Fatalf("failed to create test work: %v", err)
	}
	return w
}
