package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/edupulse/edupulse_server/models"
)

func TestBookingRejectsDuplicates(t *testing.T) {
	app, db := setupTestApp(t)
	session := createTestSession(t, app, "Bookable", "t@x.com")

	payload := fiber.Map{
		"studentEmail": "s@example.com",
		"sessionId":    session.ID,
		"tutorEmail":   "t@x.com",
	}

	resp := doRequest(t, app, "POST", "/bookedSessions", payload)
	wantStatus(t, resp, http.StatusOK)

	var body struct {
		InsertedID string `json:"insertedId"`
	}
	decodeBody(t, resp, &body)
	if body.InsertedID == "" {
		t.Fatal("Expected an inserted id for the first booking")
	}

	resp = doRequest(t, app, "POST", "/bookedSessions", payload)
	wantStatus(t, resp, http.StatusBadRequest)

	var dup struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &dup)
	if dup.Message != "Already booked" {
		t.Fatalf("Expected 'Already booked', got %q", dup.Message)
	}

	var count int64
	db.Model(&models.BookedSession{}).
		Where("student_email = ? AND session_id = ?", "s@example.com", session.ID).
		Count(&count)
	if count != 1 {
		t.Fatalf("Expected exactly one booking document, got %d", count)
	}
}

func TestBookingRequiresAllFields(t *testing.T) {
	app, _ := setupTestApp(t)
	session := createTestSession(t, app, "Strict", "t@x.com")

	resp := doRequest(t, app, "POST", "/bookedSessions", fiber.Map{
		"studentEmail": "s@example.com",
		"sessionId":    session.ID,
	})
	wantStatus(t, resp, http.StatusBadRequest)
	resp.Body.Close()
}

func TestBookingListAndCheck(t *testing.T) {
	app, _ := setupTestApp(t)
	session := createTestSession(t, app, "Listed", "t@x.com")

	resp := doRequest(t, app, "POST", "/bookedSessions", fiber.Map{
		"studentEmail": "s@example.com",
		"sessionId":    session.ID,
		"tutorEmail":   "t@x.com",
	})
	wantStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	var bookings []models.BookedSession

	resp = doRequest(t, app, "GET", "/bookedSessions?email=s@example.com", nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &bookings)
	if len(bookings) != 1 || bookings[0].SessionID != session.ID {
		t.Fatalf("Expected one booking for the student, got %+v", bookings)
	}
	if bookings[0].BookedAt.IsZero() {
		t.Fatal("Expected bookedAt to be stamped")
	}

	resp = doRequest(t, app, "GET", "/bookedSessions?email=other@example.com", nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &bookings)
	if len(bookings) != 0 {
		t.Fatalf("Expected no bookings for other student, got %+v", bookings)
	}

	var check struct {
		Booked bool `json:"booked"`
	}

	resp = doRequest(t, app, "GET", "/bookedSessions/"+session.ID+"/s@example.com", nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &check)
	if !check.Booked {
		t.Fatal("Expected booked=true for an existing booking")
	}

	resp = doRequest(t, app, "GET", "/bookedSessions/"+session.ID+"/other@example.com", nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &check)
	if check.Booked {
		t.Fatal("Expected booked=false for a missing booking")
	}

	// A malformed session id is just an unbooked session, never an error.
	resp = doRequest(t, app, "GET", "/bookedSessions/not-a-uuid/s@example.com", nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &check)
	if check.Booked {
		t.Fatal("Expected booked=false for a malformed session id")
	}
}
