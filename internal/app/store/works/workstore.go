// internal/app/store/works/workstore.go
package workstore

import (
	"context"
	"time"

	"github.com/gasaunivers/campushub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("works")}
}

// Create validates and inserts a new work. When the creation payload
// selects assignees, the first assignment batch is synthesized from the
// work's own dates and the optional group name, and the flattened
// assignee set starts as that batch's membership.
func (s *Store) Create(ctx context.Context, w models.Work, groupName string) (models.Work, error) {
	now := time.Now().UTC()

	w.ID = primitive.NewObjectID()
	w.Assignments = []models.AssignmentBatch{}
	w.CreatedAt = now
	w.UpdatedAt = nil

	// Cardinality is checked on the selection as submitted; dedup only
	// once it passes, so individuel with [S1, S1] is rejected.
	if err := models.ValidateNewWork(w.Title, w.Type, w.StartDate, w.EndDate, w.Assignees); err != nil {
		return models.Work{}, err
	}
	w.Assignees = models.DedupAssignees(w.Assignees)

	if len(w.Assignees) > 0 {
		w.Assignments = append(w.Assignments, models.AssignmentBatch{
			Assignees: w.Assignees,
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
			GroupName: groupName,
			CreatedAt: now,
		})
	}

	if _, err := s.c.InsertOne(ctx, w); err != nil {
		return models.Work{}, err
	}
	return w, nil
}

// GetByID returns a work by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Work, error) {
	var w models.Work
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&w)
	if err != nil {
		return models.Work{}, err
	}
	return w, nil
}

// ListByCreator returns the works created by the given user, most
// recently created first.
func (s *Store) ListByCreator(ctx context.Context, createdBy primitive.ObjectID) ([]models.Work, error) {
	cur, err := s.c.Find(ctx, bson.M{"created_by": createdBy},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Work
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFields holds the mutable work fields for a sparse update.
// Absent (nil) fields are untouched.
type UpdateFields struct {
	Title          *string
	Description    *string
	Type           *string
	StartDate      *time.Time
	EndDate        *time.Time
	Promotion      *primitive.ObjectID
	ClearPromotion bool
}

// Update applies the present fields to the given work and returns the
// updated document. A type change to individuel truncates the flattened
// assignees per models.ApplyTypeChange; the work must already have been
// loaded by the caller (for authorization), and is re-read here to keep
// the truncation decision on fresh state.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut UpdateFields) (models.Work, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}

	if mut.Title != nil {
		set["title"] = *mut.Title
	}
	if mut.Description != nil {
		set["description"] = *mut.Description
	}
	if mut.Type != nil {
		w, err := s.GetByID(ctx, id)
		if err != nil {
			return models.Work{}, err
		}
		if err := w.ApplyTypeChange(*mut.Type); err != nil {
			return models.Work{}, err
		}
		set["type"] = w.Type
		set["assignees"] = w.Assignees
	}
	if mut.StartDate != nil {
		set["start_date"] = *mut.StartDate
	}
	if mut.EndDate != nil {
		set["end_date"] = *mut.EndDate
	}
	if mut.ClearPromotion {
		unset["promotion"] = 1
	} else if mut.Promotion != nil {
		set["promotion"] = *mut.Promotion
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var updated models.Work
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Work{}, err
	}
	return updated, nil
}

// Delete removes a work and its embedded batches. Returns the number
// of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AppendAssignment appends one assignment batch to the work. A nil
// assignees slice means the request carried no selection and the work's
// current flattened set is re-assigned; an explicit empty selection is
// validated as such and fails collectif cardinality. The cardinality
// rule is keyed on the work's current type and counts the selection
// before dedup.
//
// The batch push and the flattened-set union run as a single UpdateOne
// ($push + $addToSet $each), so two concurrent assigns interleave at
// the document level instead of overwriting each other's union.
func (s *Store) AppendAssignment(ctx context.Context, id primitive.ObjectID, assignees []primitive.ObjectID, startDate, endDate time.Time, groupName string) (models.Work, error) {
	w, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Work{}, err
	}

	selected := assignees
	if selected == nil {
		selected = w.Assignees
	}
	if err := w.ValidateBatch(selected, startDate, endDate); err != nil {
		return models.Work{}, err
	}
	selected = models.DedupAssignees(selected)

	now := time.Now().UTC()
	batch := models.AssignmentBatch{
		Assignees: selected,
		StartDate: startDate,
		EndDate:   endDate,
		GroupName: groupName,
		CreatedAt: now,
	}

	update := bson.M{
		"$push":     bson.M{"assignments": batch},
		"$addToSet": bson.M{"assignees": bson.M{"$each": selected}},
		"$set":      bson.M{"updated_at": now},
	}

	var updated models.Work
	err = s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		return models.Work{}, err
	}
	return updated, nil
}
