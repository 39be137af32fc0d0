package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/edupulse/edupulse_server/models"
)

func postReview(t *testing.T, app *fiber.App, sessionID string, rating float64) {
	t.Helper()
	resp := doRequest(t, app, "POST", "/reviews", fiber.Map{
		"sessionId":    sessionID,
		"studentEmail": fmt.Sprintf("student%.0f@example.com", rating*10),
		"rating":       rating,
		"comment":      "good class",
	})
	wantStatus(t, resp, http.StatusOK)
	resp.Body.Close()
}

func TestReviewRecomputesAverage(t *testing.T) {
	app, db := setupTestApp(t)
	session := createTestSession(t, app, "Rated Class", "t@x.com")

	// mean(5, 4, 4) = 4.333... -> 4.3
	postReview(t, app, session.ID, 5)
	postReview(t, app, session.ID, 4)
	postReview(t, app, session.ID, 4)

	var stored models.Session
	db.First(&stored, "id = ?", session.ID)
	if stored.AverageRating == nil || *stored.AverageRating != 4.3 {
		t.Fatalf("Expected averageRating 4.3, got %v", stored.AverageRating)
	}

	resp := doRequest(t, app, "GET", "/sessions/"+session.ID+"/reviews", nil)
	wantStatus(t, resp, http.StatusOK)

	var reviews []models.Review
	decodeBody(t, resp, &reviews)
	if len(reviews) != 3 {
		t.Fatalf("Expected three reviews, got %d", len(reviews))
	}
}

func TestReviewHalfUpRounding(t *testing.T) {
	app, db := setupTestApp(t)
	session := createTestSession(t, app, "Edge Case", "t@x.com")

	// mean(4, 3) = 3.5 stays 3.5; mean(4, 3, 4) = 3.666... -> 3.7
	postReview(t, app, session.ID, 4)
	postReview(t, app, session.ID, 3)

	var stored models.Session
	db.First(&stored, "id = ?", session.ID)
	if stored.AverageRating == nil || *stored.AverageRating != 3.5 {
		t.Fatalf("Expected averageRating 3.5, got %v", stored.AverageRating)
	}

	postReview(t, app, session.ID, 4)
	db.First(&stored, "id = ?", session.ID)
	if stored.AverageRating == nil || *stored.AverageRating != 3.7 {
		t.Fatalf("Expected averageRating 3.7, got %v", stored.AverageRating)
	}
}

func TestReviewUnknownSession(t *testing.T) {
	app, db := setupTestApp(t)

	resp := doRequest(t, app, "POST", "/reviews", fiber.Map{
		"sessionId":    "00000000-0000-0000-0000-000000000000",
		"studentEmail": "s@example.com",
		"rating":       5,
	})
	wantStatus(t, resp, http.StatusNotFound)
	resp.Body.Close()

	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 0 {
		t.Fatalf("Expected no review persisted for unknown session, got %d", count)
	}
}

func TestReviewAcceptsZeroRating(t *testing.T) {
	app, db := setupTestApp(t)
	session := createTestSession(t, app, "Harsh Crowd", "t@x.com")

	resp := doRequest(t, app, "POST", "/reviews", fiber.Map{
		"sessionId":    session.ID,
		"studentEmail": "s@example.com",
		"rating":       0,
	})
	wantStatus(t, resp, http.StatusOK)

	var body struct {
		InsertedID    string  `json:"insertedId"`
		AverageRating float64 `json:"averageRating"`
	}
	decodeBody(t, resp, &body)
	if body.InsertedID == "" {
		t.Fatal("Expected a zero rating to be inserted")
	}
	if body.AverageRating != 0 {
		t.Fatalf("Expected averageRating 0, got %v", body.AverageRating)
	}

	var stored models.Session
	db.First(&stored, "id = ?", session.ID)
	if stored.AverageRating == nil || *stored.AverageRating != 0 {
		t.Fatalf("Expected stored averageRating 0, got %v", stored.AverageRating)
	}
}

func TestReviewRequiresRating(t *testing.T) {
	app, _ := setupTestApp(t)
	session := createTestSession(t, app, "Unrated", "t@x.com")

	resp := doRequest(t, app, "POST", "/reviews", fiber.Map{
		"sessionId":    session.ID,
		"studentEmail": "s@example.com",
	})
	wantStatus(t, resp, http.StatusBadRequest)
	resp.Body.Close()
}
