package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/gasaunivers/campushub/internal/app/store/users"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"github.com/gasaunivers/campushub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create_NormalizesAndHashes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name:  "  Awa Diop ",
		Email: " Awa.Diop@Example.COM ",
		Role:  models.RoleFormateur,
	}, "s3cret-passphrase")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Email != "awa.diop@example.com" {
		t.Errorf("email not normalized: %q", created.Email)
	}
	if created.Name != "Awa Diop" {
		t.Errorf("name not trimmed: %q", created.Name)
	}
	if created.PasswordHash == "s3cret-passphrase" || created.PasswordHash == "" {
		t.Error("password stored in clear or missing")
	}
	if !userstore.VerifyPassword(created, "s3cret-passphrase") {
		t.Error("VerifyPassword rejected the original password")
	}
	if userstore.VerifyPassword(created, "wrong") {
		t.Error("VerifyPassword accepted a wrong password")
	}
}

func TestStore_Create_DefaultsRoleToDirecteur(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Name: "Chef", Email: "chef@example.com"}, "pw123456")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Role != models.RoleDirecteur {
		t.Errorf("role: got %q, want %q", created.Role, models.RoleDirecteur)
	}
}

func TestStore_Create_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cases := []struct {
		name string
		user models.User
		pw   string
	}{
		{"no name", models.User{Email: "a@b.c"}, "pw"},
		{"no email", models.User{Name: "A"}, "pw"},
		{"no password", models.User{Name: "A", Email: "a@b.c"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := store.Create(ctx, tc.user, tc.pw); !errors.Is(err, models.ErrMissingFields) {
				t.Errorf("got %v, want ErrMissingFields", err)
			}
		})
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := models.User{Name: "First", Email: "dup@example.com", Role: models.RoleEtudiant}
	if _, err := store.Create(ctx, u, "pw123456"); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// same address, different case: the unique index works on the normalized form
	u2 := models.User{Name: "Second", Email: "DUP@example.com", Role: models.RoleEtudiant}
	if _, err := store.Create(ctx, u2, "pw123456"); !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestStore_GetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Name: "Moussa", Email: "moussa@example.com", Role: models.RoleEtudiant}, "pw123456")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.GetByEmail(ctx, " MOUSSA@example.com ")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != created.ID {
		t.Error("GetByEmail returned the wrong user")
	}

	if _, err := store.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("got %v, want ErrNoDocuments", err)
	}
}

func TestStore_GetByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fx.CreateEtudiant(ctx, "A", "a@example.com", nil)
	b := fx.CreateEtudiant(ctx, "B", "b@example.com", nil)

	got, err := store.GetByIDs(ctx, []primitive.ObjectID{a.ID, b.ID, primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d users, want 2 (unknown ids skipped)", len(got))
	}
}

func TestStore_StudentsOfPromotion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	promo := fx.CreatePromotion(ctx, "L3 Info", 2026)
	inPromo := fx.CreateEtudiant(ctx, "In", "in@example.com", &promo.ID)
	fx.CreateEtudiant(ctx, "Out", "out@example.com", nil)
	// a formateur in the promotion is not a student
	fx.CreateUser(ctx, "Prof", "prof@example.com", models.RoleFormateur, &promo.ID)

	got, err := store.StudentsOfPromotion(ctx, promo.ID)
	if err != nil {
		t.Fatalf("StudentsOfPromotion: %v", err)
	}
	if len(got) != 1 || got[0].ID != inPromo.ID {
		t.Errorf("got %d students, want only the enrolled étudiant", len(got))
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Name: "Old", Email: "old@example.com", Role: models.RoleEtudiant}, "pw123456")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	name := "New Name"
	phone := "+221770000000"
	updated, err := store.Update(ctx, created.ID, userstore.UpdateFields{Name: &name, Phone: &phone})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "New Name" || updated.Phone != "+221770000000" {
		t.Errorf("fields not applied: %+v", updated)
	}
	if updated.Email != "old@example.com" {
		t.Error("absent fields were touched")
	}

	bad := "superviseur"
	if _, err := store.Update(ctx, created.ID, userstore.UpdateFields{Role: &bad}); err == nil {
		t.Error("expected invalid role to be rejected")
	}

	promo := primitive.NewObjectID()
	updated, err = store.Update(ctx, created.ID, userstore.UpdateFields{Promotion: &promo})
	if err != nil {
		t.Fatalf("Update promotion: %v", err)
	}
	if updated.PromotionID == nil || *updated.PromotionID != promo {
		t.Error("promotion not set")
	}

	updated, err = store.Update(ctx, created.ID, userstore.UpdateFields{ClearPromotion: true})
	if err != nil {
		t.Fatalf("Update clear promotion: %v", err)
	}
	if updated.PromotionID != nil {
		t.Error("promotion not cleared")
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Name: "Gone", Email: "gone@example.com", Role: models.RoleEtudiant}, "pw123456")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted count: got %d", n)
	}
}

func TestStore_UnsetPromotionFor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	promo := fx.CreatePromotion(ctx, "M1 Réseaux", 2026)
	enrolled := fx.CreateEtudiant(ctx, "E", "e@example.com", &promo.ID)

	if err := store.UnsetPromotionFor(ctx, promo.ID); err != nil {
		t.Fatalf("UnsetPromotionFor: %v", err)
	}
	got, err := store.GetByID(ctx, enrolled.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.PromotionID != nil {
		t.Error("promotion reference still set after unset")
	}
}
