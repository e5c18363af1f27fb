// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/gasaunivers/campushub/internal/app/system/auth"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the caller's role (lowercased), name, Mongo ObjectID,
// and a found flag. A missing user or malformed ID yields ok=false, so
// callers can trust that ok=true means a valid authenticated caller.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in token - fail closed.
		return "", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// IsDirecteur reports whether the caller holds the directeur role.
func IsDirecteur(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleDirecteur
}

// IsFormateur reports whether the caller holds the formateur role.
func IsFormateur(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleFormateur
}

// IsEtudiant reports whether the caller holds the etudiant role.
func IsEtudiant(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleEtudiant
}

// IsStaff reports whether the caller is a formateur or directeur.
func IsStaff(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && (role == models.RoleFormateur || role == models.RoleDirecteur)
}
