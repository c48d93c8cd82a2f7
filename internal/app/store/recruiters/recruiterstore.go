// internal/app/store/recruiters/recruiterstore.go

// Package recruiters persists recruiter accounts and verifies their
// credentials. Passwords are stored as bcrypt hashes and never leave this
// package.
package recruiters

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dhivanan46/Hire-hub/internal/app/system/normalize"
	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

const bcryptCost = 12

// ErrDuplicateEmail indicates the email address is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, so callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Store provides access to the recruiters collection.
type Store struct {
	col *mongo.Collection
}

// New returns a Store backed by the recruiters collection of db.
func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("recruiters")}
}

// Create registers a recruiter, hashing the password before storage. The
// image URL may be empty. Returns ErrDuplicateEmail when the email is taken.
func (s *Store) Create(ctx context.Context, name, email, password, image string) (*models.Recruiter, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	rec := &models.Recruiter{
		ID:           primitive.NewObjectID(),
		Name:         normalize.Name(name),
		Email:        normalize.Email(email),
		PasswordHash: string(hash),
		Image:        image,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.col.InsertOne(ctx, rec); err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return rec, nil
}

// GetByEmail fetches a recruiter by (normalized) email address.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Recruiter, error) {
	var rec models.Recruiter
	if err := s.col.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByID fetches a recruiter by hex ObjectID. An unparseable id is treated
// the same as an unknown one.
func (s *Store) GetByID(ctx context.Context, hexID string) (*models.Recruiter, error) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var rec models.Recruiter
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Authenticate verifies the email/password pair, returning the recruiter on
// success and ErrInvalidCredentials on any mismatch.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.Recruiter, error) {
	rec, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return rec, nil
}
