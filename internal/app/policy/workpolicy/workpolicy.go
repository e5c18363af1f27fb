// internal/app/policy/workpolicy/workpolicy.go
package workpolicy

import (
	"net/http"

	"github.com/gasaunivers/campushub/internal/app/system/authz"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanAccess reports whether the current request user may read, update,
// delete, or assign the work owned by createdBy:
// - Directeurs always can
// - Everyone else only if they created the work
// Every per-work operation goes through this one check so the
// creator-or-directeur rule cannot drift between handlers.
func CanAccess(r *http.Request, createdBy primitive.ObjectID) bool {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok {
		return false
	}
	if role == models.RoleDirecteur {
		return true
	}
	return uid == createdBy
}

// CanCreate reports whether the current request user may create works.
// Only formateurs and directeurs can; étudiants are assignees, never
// authors.
func CanCreate(r *http.Request) bool {
	return authz.IsStaff(r)
}
