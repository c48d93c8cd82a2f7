// internal/domain/models/jobapplication.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application status values. Status starts at Pending and no public endpoint
// changes it.
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// JobApplication records one user applying to one job. Job and company
// details are denormalized onto the record so the applications list renders
// without extra lookups. At most one application may exist per (user, job)
// pair; the job_applications collection carries a unique compound index on
// (user_id, job_id) to enforce that.
type JobApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      string             `bson:"user_id" json:"userId"`
	JobID       primitive.ObjectID `bson:"job_id" json:"jobId"`
	CompanyID   primitive.ObjectID `bson:"company_id" json:"companyId"`
	JobTitle    string             `bson:"job_title" json:"jobTitle"`
	CompanyName string             `bson:"company_name" json:"companyName"`
	Location    string             `bson:"location" json:"location"`
	AppliedDate time.Time          `bson:"applied_date" json:"appliedDate"`
	Status      string             `bson:"status" json:"status"`
}
