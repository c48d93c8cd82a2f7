// internal/domain/models/recruiter.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recruiter is a company account that can log in and post jobs.
// PasswordHash is a bcrypt hash; the cleartext is never stored.
type Recruiter struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Image        string             `bson:"image" json:"image"` // logo URL, optional

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Summary is the shape returned to clients alongside a bearer token.
// It deliberately omits the password hash field entirely.
type RecruiterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

// Summary builds the client-facing view of the recruiter.
func (r *Recruiter) Summary() RecruiterSummary {
	return RecruiterSummary{
		ID:    r.ID.Hex(),
		Name:  r.Name,
		Email: r.Email,
		Image: r.Image,
	}
}
