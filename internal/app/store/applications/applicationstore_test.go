package applications_test

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Dhivanan46/Hire-hub/internal/app/store/applications"
	"github.com/Dhivanan46/Hire-hub/internal/domain/models"
	"github.com/Dhivanan46/Hire-hub/internal/testutil"
)

func TestCreate_DefaultsToPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applications.New(db)
	ctx := testutil.TestContext(t)

	rec := testutil.CreateRecruiter(t, db, "pass")
	user := testutil.CreateUser(t, db)
	job := testutil.CreateJob(t, db, rec)

	app := &models.JobApplication{
		UserID:      user.ID,
		JobID:       job.ID,
		CompanyID:   job.Company.ID,
		JobTitle:    job.Title,
		CompanyName: job.Company.Name,
		Location:    job.Location,
	}
	if err := store.Create(ctx, app); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if app.Status != models.StatusPending {
		t.Errorf("status: got %q, want %q", app.Status, models.StatusPending)
	}
	if app.AppliedDate.IsZero() {
		t.Error("Create did not default the applied date")
	}
}

func TestCreate_DuplicatePairRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applications.New(db)
	ctx := testutil.TestContext(t)

	rec := testutil.CreateRecruiter(t, db, "pass")
	user := testutil.CreateUser(t, db)
	job := testutil.CreateJob(t, db, rec)

	first := &models.JobApplication{UserID: user.ID, JobID: job.ID, CompanyID: job.Company.ID}
	if err := store.Create(ctx, first); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	second := &models.JobApplication{UserID: user.ID, JobID: job.ID, CompanyID: job.Company.ID}
	if err := store.Create(ctx, second); !errors.Is(err, applications.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}

	count, err := db.Collection("job_applications").CountDocuments(ctx, bson.M{"user_id": user.ID})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 application, found %d", count)
	}
}

func TestExists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applications.New(db)
	ctx := testutil.TestContext(t)

	rec := testutil.CreateRecruiter(t, db, "pass")
	user := testutil.CreateUser(t, db)
	applied := testutil.CreateJob(t, db, rec)
	other := testutil.CreateJob(t, db, rec)
	testutil.CreateApplication(t, db, user, applied)

	got, err := store.Exists(ctx, user.ID, applied.ID)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !got {
		t.Error("expected Exists=true for applied job")
	}

	got, err = store.Exists(ctx, user.ID, other.ID)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if got {
		t.Error("expected Exists=false for other job")
	}
}

func TestListByUser_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := applications.New(db)
	ctx := testutil.TestContext(t)

	rec := testutil.CreateRecruiter(t, db, "pass")
	user := testutil.CreateUser(t, db)
	stranger := testutil.CreateUser(t, db)
	jobA := testutil.CreateJob(t, db, rec)
	jobB := testutil.CreateJob(t, db, rec)
	jobC := testutil.CreateJob(t, db, rec)

	older := testutil.CreateApplication(t, db, user, jobA, func(a *models.JobApplication) {
		a.AppliedDate = a.AppliedDate.Add(-24 * time.Hour)
	})
	newer := testutil.CreateApplication(t, db, user, jobB)
	testutil.CreateApplication(t, db, stranger, jobC)

	apps, err := store.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(apps))
	}
	if apps[0].ID != newer.ID || apps[1].ID != older.ID {
		t.Error("applications not sorted newest first")
	}
}

func TestCountByStatus(t *testing.T) {
	apps := []models.JobApplication{
		{Status: models.StatusPending},
		{Status: models.StatusPending},
		{Status: models.StatusAccepted},
		{Status: models.StatusRejected},
	}
	st := applications.CountByStatus(apps)

	if st.Total != 4 || st.Pending != 2 || st.Accepted != 1 || st.Rejected != 1 {
		t.Errorf("got %+v", st)
	}

	empty := applications.CountByStatus(nil)
	if empty.Total != 0 || empty.Pending != 0 {
		t.Errorf("empty stats: got %+v", empty)
	}
}
