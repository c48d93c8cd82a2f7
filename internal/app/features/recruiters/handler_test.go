package recruiters_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	recruitersfeature "github.com/Dhivanan46/Hire-hub/internal/app/features/recruiters"
	recruiterstore "github.com/Dhivanan46/Hire-hub/internal/app/store/recruiters"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/storage"
	"github.com/Dhivanan46/Hire-hub/internal/app/system/token"
	"github.com/Dhivanan46/Hire-hub/internal/testutil"
)

func newRouter(t *testing.T, db *mongo.Database) http.Handler {
	t.Helper()
	tokens := token.NewManager("test-secret", time.Hour)
	files := storage.NewLocal(t.TempDir(), "/files")
	handler := recruitersfeature.New(recruiterstore.New(db), tokens, files, zap.NewNop())
	return recruitersfeature.Routes(handler, tokens)
}

type authResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Token     string `json:"token"`
	Recruiter struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Image string `json:"image"`
	} `json:"recruiter"`
}

func register(t *testing.T, router http.Handler, name, email, password string, files ...testutil.MultipartFile) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MultipartRequest(t, "POST", "/register",
		map[string]string{"name": name, "email": email, "password": password}, files...)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_IssuesToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(t, db)

	w := register(t, router, "Acme Corp", "hr@acme.test", "s3cret-pass")
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", w.Code, w.Body.String())
	}

	var body authResponse
	testutil.DecodeBody(t, w.Body, &body)
	if !body.Success || body.Token == "" {
		t.Fatalf("body: %+v", body)
	}
	if body.Recruiter.Email != "hr@acme.test" {
		t.Errorf("recruiter email: got %q", body.Recruiter.Email)
	}

	// The summary never includes the password hash.
	var raw map[string]map[string]any
	// re-run for a fresh body since the recorder body was consumed
	w2 := register(t, router, "Other Corp", "other@acme.test", "s3cret-pass")
	testutil.DecodeBody(t, w2.Body, &raw)
	if _, ok := raw["recruiter"]["password"]; ok {
		t.Error("response must not carry the password hash")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(t, db)

	if w := register(t, router, "First", "hr@acme.test", "pass-one"); w.Code != http.StatusOK {
		t.Fatalf("first register: got %d", w.Code)
	}

	w := register(t, router, "Second", "hr@acme.test", "pass-two")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second register: got %d", w.Code)
	}

	var body authResponse
	testutil.DecodeBody(t, w.Body, &body)
	if body.Message != "Recruiter already exists with this email" {
		t.Errorf("message: got %q", body.Message)
	}

	ctx := testutil.TestContext(t)
	count, err := db.Collection("recruiters").CountDocuments(ctx, bson.M{"email": "hr@acme.test"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 recruiter, found %d", count)
	}
}

func TestRegister_NonImageLogoRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(t, db)

	w := register(t, router, "Acme Corp", "hr@acme.test", "pass",
		testutil.MultipartFile{Field: "image", Filename: "logo.pdf", ContentType: "application/pdf", Content: []byte("%PDF")})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", w.Code)
	}

	ctx := testutil.TestContext(t)
	count, err := db.Collection("recruiters").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected no recruiter created, found %d", count)
	}
}

func TestLogin_GenericErrorForBothFailureModes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(t, db)

	if w := register(t, router, "Acme Corp", "hr@acme.test", "correct-pass"); w.Code != http.StatusOK {
		t.Fatalf("register: got %d", w.Code)
	}

	wrongPass := httptest.NewRecorder()
	router.ServeHTTP(wrongPass, testutil.JSONRequest(t, "POST", "/login",
		map[string]any{"email": "hr@acme.test", "password": "wrong"}))

	unknownEmail := httptest.NewRecorder()
	router.ServeHTTP(unknownEmail, testutil.JSONRequest(t, "POST", "/login",
		map[string]any{"email": "nobody@acme.test", "password": "correct-pass"}))

	for name, w := range map[string]*httptest.ResponseRecorder{"wrong password": wrongPass, "unknown email": unknownEmail} {
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status %d", name, w.Code)
		}
		var body authResponse
		testutil.DecodeBody(t, w.Body, &body)
		if body.Message != "Invalid email or password" {
			t.Errorf("%s: message %q", name, body.Message)
		}
	}
}

func TestProfile_RequiresToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(t, db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/profile", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestProfile_WithToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(t, db)

	w := register(t, router, "Acme Corp", "hr@acme.test", "pass")
	if w.Code != http.StatusOK {
		t.Fatalf("register: got %d", w.Code)
	}
	var reg authResponse
	testutil.DecodeBody(t, w.Body, &reg)

	req := httptest.NewRequest("GET", "/profile", nil)
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", w.Code, w.Body.String())
	}
	var body authResponse
	testutil.DecodeBody(t, w.Body, &body)
	if body.Recruiter.Email != "hr@acme.test" {
		t.Errorf("recruiter email: got %q", body.Recruiter.Email)
	}
}
