// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles carried on User documents and inside bearer tokens. The French
// labels are the wire format the SPA and the seed data use.
const (
	RoleDirecteur = "directeur"
	RoleFormateur = "formateur"
	RoleEtudiant  = "etudiant"
)

// IsValidRole reports whether role is one of the three known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleDirecteur, RoleFormateur, RoleEtudiant:
		return true
	}
	return false
}

// User represents directors, formateurs, and étudiants.
//
// PasswordHash is a bcrypt hash and is never serialized to JSON.
// PromotionID is only meaningful for étudiants.
type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name         string              `bson:"name" json:"name"`
	NameCI       string              `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Email        string              `bson:"email" json:"email"`
	PasswordHash string              `bson:"password" json:"-"`
	Role         string              `bson:"role" json:"role"`
	Phone        string              `bson:"phone,omitempty" json:"phone,omitempty"`
	PromotionID  *primitive.ObjectID `bson:"promotion,omitempty" json:"promotion,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsStaff reports whether the user may create works.
func (u *User) IsStaff() bool {
	return u.Role == RoleDirecteur || u.Role == RoleFormateur
}
