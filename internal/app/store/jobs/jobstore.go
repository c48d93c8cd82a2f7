// internal/app/store/jobs/jobstore.go

// Package jobs persists job postings.
package jobs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

// Store provides access to the jobs collection.
type Store struct {
	col *mongo.Collection
}

// New returns a Store backed by the jobs collection of db.
func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("jobs")}
}

// Create inserts a job posting, assigning an ID and defaulting the posting
// date to now when unset.
func (s *Store) Create(ctx context.Context, job *models.Job) error {
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	if job.Date.IsZero() {
		job.Date = time.Now().UTC()
	}
	_, err := s.col.InsertOne(ctx, job)
	return err
}

// ListVisible returns all jobs with the visibility flag set, newest first.
func (s *Store) ListVisible(ctx context.Context) ([]models.Job, error) {
	cur, err := s.col.Find(ctx,
		bson.M{"visible": true},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	jobs := []models.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetByID fetches a single job regardless of visibility. Returns
// mongo.ErrNoDocuments for an unknown id.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var job models.Job
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}
