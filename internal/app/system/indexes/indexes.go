// internal/app/system/indexes/indexes.go

// Package indexes declares the MongoDB indexes the application relies on and
// ensures they exist at startup. The unique indexes here are load-bearing:
// they are what prevents two registrations with the same email or two
// applications by the same seeker to the same job from racing past the
// handler-level checks.
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexSet struct {
	collection string
	models     []mongo.IndexModel
}

func all() []indexSet {
	return []indexSet{
		{
			collection: "users",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetName("uniq_email").SetUnique(true),
				},
			},
		},
		{
			collection: "recruiters",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "email", Value: 1}},
					Options: options.Index().SetName("uniq_email").SetUnique(true),
				},
			},
		},
		{
			collection: "jobs",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "visible", Value: 1}, {Key: "date", Value: -1}},
					Options: options.Index().SetName("visible_date"),
				},
				{
					Keys:    bson.D{{Key: "company_id._id", Value: 1}},
					Options: options.Index().SetName("company"),
				},
			},
		},
		{
			collection: "job_applications",
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "job_id", Value: 1}},
					Options: options.Index().SetName("uniq_user_job").SetUnique(true),
				},
				{
					Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "applied_date", Value: -1}},
					Options: options.Index().SetName("user_applied_date"),
				},
			},
		},
	}
}

// EnsureAll creates every index the application depends on. CreateMany is
// idempotent for indexes that already exist with the same definition.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	for _, set := range all() {
		if _, err := db.Collection(set.collection).Indexes().CreateMany(ctx, set.models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", set.collection, err)
		}
	}
	return nil
}
