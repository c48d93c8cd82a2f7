// internal/domain/models/job.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanyRef is the company snapshot embedded on a job posting. Company
// details are copied by value at posting time rather than joined at read
// time, so a job keeps showing the company as it was when posted.
type CompanyRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image string             `bson:"image" json:"image"`
}

// Job is a posting created by a recruiter. Visible gates inclusion in the
// public listing; an invisible job can still be fetched by ID.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"` // sanitized rich text
	Location    string             `bson:"location" json:"location"`
	Category    string             `bson:"category" json:"category"`
	Level       string             `bson:"level" json:"level"`
	Salary      float64            `bson:"salary" json:"salary"`
	Company     CompanyRef         `bson:"company_id" json:"companyId"`
	Date        time.Time          `bson:"date" json:"date"`
	Visible     bool               `bson:"visible" json:"visible"`
}
