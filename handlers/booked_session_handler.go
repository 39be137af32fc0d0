package handlers

import (
	"errors"

	"github.com/edupulse/edupulse_server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookedSessionHandler struct {
	db *gorm.DB
}

func NewBookedSessionHandler(db *gorm.DB) *BookedSessionHandler {
	return &BookedSessionHandler{db: db}
}

type CreateBookingRequest struct {
	StudentEmail string `json:"studentEmail" validate:"required,email"`
	SessionID    string `json:"sessionId" validate:"required,uuid"`
	TutorEmail   string `json:"tutorEmail" validate:"required,email"`
}

// CreateBooking books a session for a student. The (studentEmail,
// sessionId) pair is guarded by a unique index, so the duplicate check
// is a single atomic insert rather than a racy find-then-insert.
func (h *BookedSessionHandler) CreateBooking(c *fiber.Ctx) error {
	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required booking fields"})
	}

	booking := models.BookedSession{
		StudentEmail: req.StudentEmail,
		SessionID:    req.SessionID,
		TutorEmail:   req.TutorEmail,
	}
	result := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_email"}, {Name: "session_id"}},
		DoNothing: true,
	}).Create(&booking)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Already booked"})
	}

	return c.JSON(fiber.Map{"insertedId": booking.ID})
}

// ListBookings returns booked sessions, optionally for one student.
func (h *BookedSessionHandler) ListBookings(c *fiber.Ctx) error {
	query := h.db.Model(&models.BookedSession{})
	if email := c.Query("email"); email != "" {
		query = query.Where("student_email = ?", email)
	}

	var bookings []models.BookedSession
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(bookings)
}

// CheckBooking reports whether a student has already booked a session.
func (h *BookedSessionHandler) CheckBooking(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	studentEmail := c.Params("studentEmail")

	// A malformed session id cannot match a booking.
	if uuid.Validate(sessionID) != nil {
		return c.JSON(fiber.Map{"booked": false})
	}

	var booking models.BookedSession
	err := h.db.Where("session_id = ? AND student_email = ?", sessionID, studentEmail).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(fiber.Map{"booked": false})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"booked": true})
}
