package bootstrap

import (
	"testing"

	"github.com/gasaunivers/campushub/internal/domain/models"
	"github.com/gasaunivers/campushub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestStartup_SeedsDirecteur(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	appCfg := AppConfig{
		SuperAdminEmail: "chef@test.com",
		SuperAdminName:  "Chef",
	}

	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"email": "chef@test.com"}).Decode(&user); err != nil {
		t.Fatalf("seeded account not found: %v", err)
	}
	if user.Role != models.RoleDirecteur {
		t.Errorf("role: got %q, want %q", user.Role, models.RoleDirecteur)
	}
	if user.PasswordHash == "" {
		t.Error("seeded account has no credential")
	}
}

func TestStartup_ExistingAccountUntouched(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	existing := fx.CreateFormateur(ctx, "Already Here", "chef@test.com")

	deps := DBDeps{MongoDatabase: db}
	appCfg := AppConfig{SuperAdminEmail: "chef@test.com", SuperAdminName: "Chef"}
	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	// no second account, role unchanged
	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": "chef@test.com"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("got %d accounts, want 1", n)
	}
	var user models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": existing.ID}).Decode(&user); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if user.Role != models.RoleFormateur {
		t.Errorf("existing account role changed to %q", user.Role)
	}
}

func TestStartup_NoSeedConfigured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	if err := Startup(ctx, nil, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}
	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("unexpected seeded accounts: %d", n)
	}
}
