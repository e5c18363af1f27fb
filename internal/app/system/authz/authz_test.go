package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gasaunivers/campushub/internal/app/system/auth"
	"github.com/gasaunivers/campushub/internal/app/system/authz"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserCtx_NoUser(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	role, name, uid, ok := authz.UserCtx(r)
	if ok {
		t.Fatal("expected ok=false without a user")
	}
	if role != "" || name != "" || uid != primitive.NilObjectID {
		t.Errorf("expected zero values, got %q %q %s", role, name, uid.Hex())
	}
}

func TestUserCtx_MalformedID(t *testing.T) {
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.SessionUser{ID: "not-hex", Role: models.RoleDirecteur})
	if _, _, _, ok := authz.UserCtx(r); ok {
		t.Error("expected ok=false for malformed user ID")
	}
}

func TestUserCtx_NormalizesRole(t *testing.T) {
	id := primitive.NewObjectID()
	r := auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
		&auth.SessionUser{ID: id.Hex(), Name: "Awa", Role: "Directeur"})
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if role != models.RoleDirecteur {
		t.Errorf("role: got %q", role)
	}
	if name != "Awa" || uid != id {
		t.Errorf("identity: got %q %s", name, uid.Hex())
	}
}

func TestRolePredicates(t *testing.T) {
	req := func(role string) *http.Request {
		return auth.WithTestUser(httptest.NewRequest("GET", "/", nil),
			&auth.SessionUser{ID: primitive.NewObjectID().Hex(), Role: role})
	}

	if !authz.IsDirecteur(req(models.RoleDirecteur)) || authz.IsDirecteur(req(models.RoleFormateur)) {
		t.Error("IsDirecteur misclassifies")
	}
	if !authz.IsFormateur(req(models.RoleFormateur)) || authz.IsFormateur(req(models.RoleEtudiant)) {
		t.Error("IsFormateur misclassifies")
	}
	if !authz.IsEtudiant(req(models.RoleEtudiant)) || authz.IsEtudiant(req(models.RoleDirecteur)) {
		t.Error("IsEtudiant misclassifies")
	}
	if !authz.IsStaff(req(models.RoleDirecteur)) || !authz.IsStaff(req(models.RoleFormateur)) || authz.IsStaff(req(models.RoleEtudiant)) {
		t.Error("IsStaff misclassifies")
	}
}
