// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/gasaunivers/campushub/internal/app/system/normalize"
	"github.com/gasaunivers/campushub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for password hashes.
const BcryptCost = 12

var ErrDuplicateEmail = errors.New("Email already in use")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GeneratePassword returns a random initial credential for accounts
// created without one. It is returned to the creating directeur once
// and only the hash is stored.
func GeneratePassword() string {
	return uuid.NewString()
}

// Create inserts a new user, normalizing the email, folding the name
// for search, and hashing the password.
func (s *Store) Create(ctx context.Context, u models.User, password string) (models.User, error) {
	now := time.Now().UTC()

	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.NameCI = text.Fold(u.Name)
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	if u.Role == "" {
		u.Role = models.RoleDirecteur
	}
	u.CreatedAt = now
	u.UpdatedAt = now

	if u.Name == "" || u.Email == "" || password == "" {
		return models.User{}, models.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = string(hash)

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// VerifyPassword compares a candidate password against the stored hash.
func VerifyPassword(u models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// GetByEmail returns the user with the given (normalized) email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetByID returns a user by ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetByIDs returns multiple users by their IDs.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns all users, newest first.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// StudentsOfPromotion returns the étudiants enrolled in the promotion.
func (s *Store) StudentsOfPromotion(ctx context.Context, promotionID primitive.ObjectID) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{
		"promotion": promotionID,
		"role":      models.RoleEtudiant,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFields holds the mutable user fields for a sparse update.
// Password changes go through a dedicated flow, never here.
type UpdateFields struct {
	Name           *string
	Email          *string
	Role           *string
	Phone          *string
	Promotion      *primitive.ObjectID
	ClearPromotion bool
}

// Update applies the present fields and refreshes UpdatedAt. Returns
// the updated user.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut UpdateFields) (models.User, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	unset := bson.M{}

	if mut.Name != nil {
		name := normalize.Name(*mut.Name)
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	if mut.Email != nil {
		set["email"] = normalize.Email(*mut.Email)
	}
	if mut.Role != nil {
		role := normalize.Role(*mut.Role)
		if !models.IsValidRole(role) {
			return models.User{}, models.ErrInvalidType
		}
		set["role"] = role
	}
	if mut.Phone != nil {
		set["phone"] = *mut.Phone
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

	var updated models.User
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&updated)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return updated, nil
}

// Delete removes a user by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// UnsetPromotionFor clears the promotion reference on every user in
// the given promotion. Called when a promotion is deleted.
func (s *Store) UnsetPromotionFor(ctx context.Context, promotionID primitive.ObjectID) error {
	_, err := s.c.UpdateMany(ctx,
		bson.M{"promotion": promotionID},
		bson.M{"$unset": bson.M{"promotion": 1}})
	return err
}
