package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authfeat "github.com/gasaunivers/campushub/internal/app/features/auth"
	"github.com/gasaunivers/campushub/internal/app/system/auth"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"github.com/gasaunivers/campushub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newHandler(t *testing.T, db *mongo.Database) (*authfeat.Handler, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager(testSecret, time.Hour, zap.NewNop())
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return authfeat.NewHandler(db, tokens, zap.NewNop()), tokens
}

func TestRegisterThenLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, tokens := newHandler(t, db)

	req := testutil.JSONRequest(t, "POST", "/api/auth/register", map[string]any{
		"name":     "Test Admin",
		"email":    "Test-Admin@Example.com",
		"password": "Admin123!",
		"role":     models.RoleDirecteur,
	})
	rec := httptest.NewRecorder()
	h.ServeRegister(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}
	var reg struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	testutil.DecodeBody(t, rec, &reg)
	if reg.Token == "" {
		t.Fatal("register: empty token")
	}
	if reg.User.Email != "test-admin@example.com" {
		t.Errorf("register: email not normalized: %q", reg.User.Email)
	}

	// the issued token identifies the user
	su, err := tokens.Verify(reg.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if su.ID != reg.User.ID.Hex() || su.Role != models.RoleDirecteur {
		t.Errorf("claims: got %+v", su)
	}

	// login with the same credentials
	req = testutil.JSONRequest(t, "POST", "/api/auth/login", map[string]any{
		"email":    "test-admin@example.com",
		"password": "Admin123!",
	})
	rec = httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login: got %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var login struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	testutil.DecodeBody(t, rec, &login)
	if login.Token == "" || login.User.ID != reg.User.ID {
		t.Error("login: missing token or wrong user")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newHandler(t, db)

	body := map[string]any{
		"name":     "First",
		"email":    "dup@example.com",
		"password": "pw123456",
		"role":     models.RoleEtudiant,
	}
	rec := httptest.NewRecorder()
	h.ServeRegister(rec, testutil.JSONRequest(t, "POST", "/api/auth/register", body))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeRegister(rec, testutil.JSONRequest(t, "POST", "/api/auth/register", body))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second register: got %d, want 400", rec.Code)
	}
	if msg := testutil.Message(t, rec); msg != "Email already in use" {
		t.Errorf("message: got %q", msg)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newHandler(t, db)

	rec := httptest.NewRecorder()
	h.ServeRegister(rec, testutil.JSONRequest(t, "POST", "/api/auth/register", map[string]any{
		"email": "no-name@example.com",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", rec.Code)
	}
	if msg := testutil.Message(t, rec); msg != "Missing required fields" {
		t.Errorf("message: got %q", msg)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newHandler(t, db)

	rec := httptest.NewRecorder()
	h.ServeRegister(rec, testutil.JSONRequest(t, "POST", "/api/auth/register", map[string]any{
		"name":     "U",
		"email":    "u@example.com",
		"password": "right-pw",
		"role":     models.RoleEtudiant,
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: got %d", rec.Code)
	}

	cases := []struct {
		name  string
		email string
		pw    string
	}{
		{"wrong password", "u@example.com", "wrong-pw"},
		{"unknown email", "nobody@example.com", "right-pw"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeLogin(rec, testutil.JSONRequest(t, "POST", "/api/auth/login", map[string]any{
				"email":    tc.email,
				"password": tc.pw,
			}))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("got %d, want 401", rec.Code)
			}
			if msg := testutil.Message(t, rec); msg != "Invalid credentials" {
				t.Errorf("message: got %q", msg)
			}
		})
	}
}
