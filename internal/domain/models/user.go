// internal/domain/models/user.go
package models

import "time"

// User is a job seeker. The _id is the stable identifier assigned by the
// external identity provider, not a Mongo ObjectID: the provider owns the
// account and we mirror just enough of it to serve profiles and applications.
type User struct {
	ID     string `bson:"_id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Image  string `bson:"image" json:"image"`
	Resume string `bson:"resume" json:"resume"` // object-storage URL, empty until first upload
	Phone  string `bson:"phone,omitempty" json:"phone,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasResume reports whether the user has a resume on file.
func (u *User) HasResume() bool { return u.Resume != "" }
