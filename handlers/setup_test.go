package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/edupulse/edupulse_server/database"
	"github.com/edupulse/edupulse_server/handlers"
	"github.com/edupulse/edupulse_server/models"
	"github.com/edupulse/edupulse_server/routes"
)

// setupTestApp builds the full route table over an in-memory database.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access connection pool: %v", err)
	}
	// A pooled :memory: database is a fresh database per connection.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	app := fiber.New()
	routes.UserRoutes(app, handlers.NewUserHandler(db))
	routes.SessionRoutes(app, handlers.NewSessionHandler(db), handlers.NewReviewHandler(db))
	routes.MaterialRoutes(app, handlers.NewMaterialHandler(db))
	routes.BookedSessionRoutes(app, handlers.NewBookedSessionHandler(db))
	routes.NoteRoutes(app, handlers.NewNoteHandler(db))

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("Expected status %d, got %d", want, resp.StatusCode)
	}
}

func createTestSession(t *testing.T, app *fiber.App, title, tutorEmail string) models.Session {
	t.Helper()

	resp := doRequest(t, app, "POST", "/sessions", fiber.Map{
		"title":      title,
		"tutorName":  "Test Tutor",
		"tutorEmail": tutorEmail,
	})
	wantStatus(t, resp, http.StatusOK)

	var session models.Session
	decodeBody(t, resp, &session)
	return session
}
