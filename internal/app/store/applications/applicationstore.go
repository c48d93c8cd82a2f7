// internal/app/store/applications/applicationstore.go

// Package applications persists job applications. The unique compound index
// on (user_id, job_id) makes Create safe against concurrent duplicate
// submissions.
package applications

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

// ErrAlreadyApplied indicates the user already holds an application for the
// job.
var ErrAlreadyApplied = errors.New("already applied for this job")

// Store provides access to the job_applications collection.
type Store struct {
	col *mongo.Collection
}

// New returns a Store backed by the job_applications collection of db.
func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("job_applications")}
}

// Create inserts an application, defaulting the status to Pending and the
// applied date to now. Returns ErrAlreadyApplied when the (user, job) pair
// already has one.
func (s *Store) Create(ctx context.Context, app *models.JobApplication) error {
	if app.ID.IsZero() {
		app.ID = primitive.NewObjectID()
	}
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	if app.AppliedDate.IsZero() {
		app.AppliedDate = time.Now().UTC()
	}

	if _, err := s.col.InsertOne(ctx, app); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

// Exists reports whether the user already applied for the job.
func (s *Store) Exists(ctx context.Context, userID string, jobID primitive.ObjectID) (bool, error) {
	err := s.col.FindOne(ctx, bson.M{"user_id": userID, "job_id": jobID}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// ListByUser returns the user's applications, most recent first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	cur, err := s.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "applied_date", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	apps := []models.JobApplication{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Stats partitions a set of applications by status.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// CountByStatus tallies apps by status in memory.
func CountByStatus(apps []models.JobApplication) Stats {
	st := Stats{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case models.StatusPending:
			st.Pending++
		case models.StatusAccepted:
			st.Accepted++
		case models.StatusRejected:
			st.Rejected++
		}
	}
	return st
}
