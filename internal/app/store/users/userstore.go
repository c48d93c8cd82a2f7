// internal/app/store/users/userstore.go

// Package users persists job-seeker records. User IDs are the stable string
// identifiers assigned by the external identity provider, stored as _id.
package users

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dhivanan46/Hire-hub/internal/app/system/normalize"
	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

// ErrDuplicateEmail indicates another user already holds the email address.
var ErrDuplicateEmail = errors.New("email already in use")

// Store provides access to the users collection.
type Store struct {
	col *mongo.Collection
}

// New returns a Store backed by the users collection of db.
func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("users")}
}

// GetByID fetches a user by provider ID. Returns mongo.ErrNoDocuments when
// no record exists.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Resolve returns the user for id, creating the record when it does not
// exist and all of name, email, and image were supplied by the identity
// provider. With an unknown id and incomplete identity fields it returns
// mongo.ErrNoDocuments without writing anything.
func (s *Store) Resolve(ctx context.Context, id, name, email, image string) (*models.User, error) {
	u, err := s.GetByID(ctx, id)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	name = normalize.Name(name)
	email = normalize.Email(email)
	if name == "" || email == "" || image == "" {
		return nil, mongo.ErrNoDocuments
	}

	now := time.Now().UTC()
	created := &models.User{
		ID:        id,
		Name:      name,
		Email:     email,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.col.InsertOne(ctx, created); err != nil {
		if wafflemongo.IsDup(err) {
			// Either a concurrent request created the same user, or the
			// email belongs to a different user.
			if u, lookupErr := s.GetByID(ctx, id); lookupErr == nil {
				return u, nil
			}
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return created, nil
}

// UpdateProfile sets the user's name and, when resume is non-empty, the
// resume URL. Returns the updated record.
func (s *Store) UpdateProfile(ctx context.Context, id, name, resume string) (*models.User, error) {
	set := bson.M{
		"name":       normalize.Name(name),
		"updated_at": time.Now().UTC(),
	}
	if resume != "" {
		set["resume"] = resume
	}

	var u models.User
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SetResume overwrites the user's resume URL and returns the updated record.
func (s *Store) SetResume(ctx context.Context, id, resumeURL string) (*models.User, error) {
	var u models.User
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"resume": resumeURL, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert creates or replaces the user record for u.ID, preserving an
// existing resume URL and creation time. Used by the identity-provider
// webhook handlers.
func (s *Store) Upsert(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":       normalize.Name(u.Name),
			"email":      normalize.Email(u.Email),
			"image":      u.Image,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": u.ID}, update, options.Update().SetUpsert(true))
	if wafflemongo.IsDup(err) {
		return ErrDuplicateEmail
	}
	return err
}

// Delete removes the user record. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
