// internal/domain/models/work.go
package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Work types. The type fixes the cardinality rule applied to every
// assignment batch at the time the batch is created.
const (
	WorkTypeIndividuel = "individuel"
	WorkTypeCollectif  = "collectif"
)

// Validation errors for works and assignment batches. Handlers map these
// to 400 responses; the messages are the user-facing texts the SPA shows.
var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrMissingDates  = errors.New("startDate and endDate are required")
	ErrInvalidType   = errors.New("Invalid type")

	ErrIndividuelExactlyOne = errors.New("Individuel: sélectionner exactement un étudiant")
	ErrCollectifAtLeastOne  = errors.New("Collectif: sélectionner au moins un étudiant")
)

// IsValidWorkType reports whether t is "individuel" or "collectif".
func IsValidWorkType(t string) bool {
	return t == WorkTypeIndividuel || t == WorkTypeCollectif
}

// AssignmentBatch is one dated group of étudiants attached to a Work.
// Batches are embedded in the Work document, appended by the assign
// operation, and never individually mutated or deleted.
type AssignmentBatch struct {
	Assignees []primitive.ObjectID `bson:"assignees" json:"assignees"`
	StartDate time.Time            `bson:"start_date" json:"startDate"`
	EndDate   time.Time            `bson:"end_date" json:"endDate"`
	GroupName string               `bson:"group_name,omitempty" json:"groupName,omitempty"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
}

// Work represents one assignable task (travail).
//
// Assignees is the flattened union of every étudiant ever assigned
// across all batches. It only ever grows as batches are appended; the
// per-batch membership in Assignments is the dated history.
//
// StartDate/EndDate ordering is deliberately not validated (end before
// start is stored as given) to match the data already in production.
type Work struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Type        string               `bson:"type" json:"type"`
	StartDate   time.Time            `bson:"start_date" json:"startDate"`
	EndDate     time.Time            `bson:"end_date" json:"endDate"`
	CreatedBy   primitive.ObjectID   `bson:"created_by" json:"createdBy"`
	PromotionID *primitive.ObjectID  `bson:"promotion,omitempty" json:"promotion,omitempty"`
	Assignees   []primitive.ObjectID `bson:"assignees" json:"assignees"`
	Assignments []AssignmentBatch    `bson:"assignments" json:"assignments"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// DedupAssignees removes duplicate IDs, preserving first-seen order.
func DedupAssignees(ids []primitive.ObjectID) []primitive.ObjectID {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// checkCardinality applies the per-type assignee count rule.
func checkCardinality(workType string, count int) error {
	switch workType {
	case WorkTypeIndividuel:
		if count != 1 {
			return ErrIndividuelExactlyOne
		}
	case WorkTypeCollectif:
		if count < 1 {
			return ErrCollectifAtLeastOne
		}
	default:
		return ErrInvalidType
	}
	return nil
}

// ValidateNewWork checks the creation invariants: required fields, a
// known type, and the cardinality of the initial assignee selection.
// Cardinality counts the selection as given; callers dedup only after
// validation succeeds, so a duplicated étudiant in an individuel
// selection still fails.
func ValidateNewWork(title, workType string, startDate, endDate time.Time, assignees []primitive.ObjectID) error {
	if title == "" || workType == "" || startDate.IsZero() || endDate.IsZero() {
		return ErrMissingFields
	}
	if !IsValidWorkType(workType) {
		return ErrInvalidType
	}
	return checkCardinality(workType, len(assignees))
}

// ValidateBatch checks a proposed assignment batch against this work.
// The cardinality rule is keyed off the work's *current* type, never a
// type declared on the batch itself.
func (w *Work) ValidateBatch(assignees []primitive.ObjectID, startDate, endDate time.Time) error {
	if startDate.IsZero() || endDate.IsZero() {
		return ErrMissingDates
	}
	return checkCardinality(w.Type, len(assignees))
}

// ApplyTypeChange switches the work's type. Changing to individuel with
// more than one flattened assignee truncates Assignees to its first
// element rather than rejecting the update; this is the portal's
// long-standing behavior and the SPA depends on it.
func (w *Work) ApplyTypeChange(newType string) error {
	if !IsValidWorkType(newType) {
		return ErrInvalidType
	}
	w.Type = newType
	if newType == WorkTypeIndividuel && len(w.Assignees) > 1 {
		w.Assignees = w.Assignees[:1]
	}
	return nil
}

// UnionAssignees returns the set union of the work's flattened assignees
// and extra, preserving existing order and appending new IDs in the
// order given.
func (w *Work) UnionAssignees(extra []primitive.ObjectID) []primitive.ObjectID {
	return DedupAssignees(append(append([]primitive.ObjectID{}, w.Assignees...), extra...))
}
