package recruiters_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Dhivanan46/Hire-hub/internal/app/store/recruiters"
	"github.com/Dhivanan46/Hire-hub/internal/testutil"
)

func TestCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recruiters.New(db)
	ctx := testutil.TestContext(t)

	rec, err := store.Create(ctx, "Acme Corp", "HR@Acme.Test", "s3cret-pass", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.Email != "hr@acme.test" {
		t.Errorf("email not normalized: got %q", rec.Email)
	}
	if rec.PasswordHash == "s3cret-pass" || rec.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}

	var stored bson.M
	if err := db.Collection("recruiters").FindOne(ctx, bson.M{"_id": rec.ID}).Decode(&stored); err != nil {
		t.Fatalf("recruiter not persisted: %v", err)
	}
	if stored["password"] == "s3cret-pass" {
		t.Error("cleartext password in database")
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recruiters.New(db)
	ctx := testutil.TestContext(t)

	if _, err := store.Create(ctx, "First", "hr@acme.test", "pass-one", ""); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, "Second", "hr@acme.test", "pass-two", "")
	if !errors.Is(err, recruiters.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	count, err := db.Collection("recruiters").CountDocuments(ctx, bson.M{"email": "hr@acme.test"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 recruiter, found %d", count)
	}
}

func TestAuthenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recruiters.New(db)
	ctx := testutil.TestContext(t)

	created, err := store.Create(ctx, "Acme Corp", "hr@acme.test", "correct-pass", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rec, err := store.Authenticate(ctx, "hr@acme.test", "correct-pass")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if rec.ID != created.ID {
		t.Errorf("authenticated wrong recruiter: got %s, want %s", rec.ID.Hex(), created.ID.Hex())
	}
}

func TestAuthenticate_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recruiters.New(db)
	ctx := testutil.TestContext(t)

	if _, err := store.Create(ctx, "Acme Corp", "hr@acme.test", "correct-pass", ""); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, wrongPass := store.Authenticate(ctx, "hr@acme.test", "wrong-pass")
	_, unknownEmail := store.Authenticate(ctx, "nobody@acme.test", "correct-pass")

	if !errors.Is(wrongPass, recruiters.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, recruiters.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", unknownEmail)
	}
}

func TestGetByID_BadHex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := recruiters.New(db)

	if _, err := store.GetByID(testutil.TestContext(t), "not-a-hex-id"); err == nil {
		t.Error("expected error for unparseable id")
	}
}
