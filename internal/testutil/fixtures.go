// internal/testutil/fixtures.go
package testutil

import (
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
)

var fixtureSeq int

func nextSeq() int {
	fixtureSeq++
	return fixtureSeq
}

// CreateUser inserts a job seeker directly into the database, bypassing the
// store. Fields not set by the caller get distinct defaults.
func CreateUser(t *testing.T, db *mongo.Database, mutate ...func(*models.User)) *models.User {
	t.Helper()
	n := nextSeq()
	u := &models.User{
		ID:        fmt.Sprintf("user_%d", n),
		Name:      fmt.Sprintf("Seeker %d", n),
		Email:     fmt.Sprintf("seeker%d@example.test", n),
		Image:     fmt.Sprintf("https://img.example.test/u%d.png", n),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, m := range mutate {
		m(u)
	}
	if _, err := db.Collection("users").InsertOne(TestContext(t), u); err != nil {
		t.Fatalf("failed to insert user fixture: %v", err)
	}
	return u
}

// CreateRecruiter inserts a recruiter with a bcrypt hash of password.
func CreateRecruiter(t *testing.T, db *mongo.Database, password string, mutate ...func(*models.Recruiter)) *models.Recruiter {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}
	n := nextSeq()
	rec := &models.Recruiter{
		ID:           primitive.NewObjectID(),
		Name:         fmt.Sprintf("Acme %d", n),
		Email:        fmt.Sprintf("hr%d@acme.test", n),
		PasswordHash: string(hash),
		Image:        fmt.Sprintf("https://img.example.test/logo%d.png", n),
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	for _, m := range mutate {
		m(rec)
	}
	if _, err := db.Collection("recruiters").InsertOne(TestContext(t), rec); err != nil {
		t.Fatalf("failed to insert recruiter fixture: %v", err)
	}
	return rec
}

// CreateJob inserts a job posted by the given recruiter.
func CreateJob(t *testing.T, db *mongo.Database, rec *models.Recruiter, mutate ...func(*models.Job)) *models.Job {
	t.Helper()
	n := nextSeq()
	job := &models.Job{
		ID:          primitive.NewObjectID(),
		Title:       fmt.Sprintf("Engineer %d", n),
		Description: "<p>Build things.</p>",
		Location:    "Remote",
		Category:    "Programming",
		Level:       "Senior level",
		Salary:      120000,
		Company: models.CompanyRef{
			ID:    rec.ID,
			Name:  rec.Name,
			Email: rec.Email,
			Image: rec.Image,
		},
		Date:    time.Now().UTC().Truncate(time.Millisecond),
		Visible: true,
	}
	for _, m := range mutate {
		m(job)
	}
	if _, err := db.Collection("jobs").InsertOne(TestContext(t), job); err != nil {
		t.Fatalf("failed to insert job fixture: %v", err)
	}
	return job
}

// CreateApplication inserts an application linking user and job.
func CreateApplication(t *testing.T, db *mongo.Database, user *models.User, job *models.Job, mutate ...func(*models.JobApplication)) *models.JobApplication {
	t.Helper()
	app := &models.JobApplication{
		ID:          primitive.NewObjectID(),
		UserID:      user.ID,
		JobID:       job.ID,
		CompanyID:   job.Company.ID,
		JobTitle:    job.Title,
		CompanyName: job.Company.Name,
		Location:    job.Location,
		AppliedDate: time.Now().UTC().Truncate(time.Millisecond),
		Status:      models.StatusPending,
	}
	for _, m := range mutate {
		m(app)
	}
	if _, err := db.Collection("job_applications").InsertOne(TestContext(t), app); err != nil {
		t.Fatalf("failed to insert application fixture: %v", err)
	}
	return app
}
