package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/edupulse/edupulse_server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionHandler struct {
	db *gorm.DB
}

func NewSessionHandler(db *gorm.DB) *SessionHandler {
	return &SessionHandler{db: db}
}

// ListSessions returns all sessions, optionally filtered by status
// and/or tutor email.
func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	query := h.db.Model(&models.Session{})

	if status := c.Query("status"); status != "" {
		if !models.SessionStatus(status).Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
		}
		query = query.Where("status = ?", status)
	}
	if tutorEmail := c.Query("tutorEmail"); tutorEmail != "" {
		query = query.Where("tutor_email = ?", tutorEmail)
	}

	var sessions []models.Session
	if err := query.Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(sessions)
}

// ListApprovedSessions is the public-facing listing.
func (h *SessionHandler) ListApprovedSessions(c *fiber.Ctx) error {
	var sessions []models.Session
	if err := h.db.Where("status = ?", models.StatusApproved).Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) ListSessionsByTutor(c *fiber.Ctx) error {
	email := c.Params("email")

	var sessions []models.Session
	if err := h.db.Where("tutor_email = ?", email).Find(&sessions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(sessions)
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session ID"})
	}

	var session models.Session
	if err := h.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(session)
}

type CreateSessionRequest struct {
	Title             string `json:"title" validate:"required"`
	Description       string `json:"description"`
	TutorName         string `json:"tutorName" validate:"required"`
	TutorEmail        string `json:"tutorEmail" validate:"required,email"`
	RegistrationStart string `json:"registrationStart"`
	RegistrationEnd   string `json:"registrationEnd"`
	ClassStart        string `json:"classStart"`
	ClassEnd          string `json:"classEnd"`
	Duration          string `json:"duration"`
}

// CreateSession inserts a new session proposal. Status is always pending
// and the registration fee is always 0, whatever the client sends.
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	session := models.Session{
		Title:             req.Title,
		Description:       req.Description,
		TutorName:         req.TutorName,
		TutorEmail:        req.TutorEmail,
		RegistrationStart: req.RegistrationStart,
		RegistrationEnd:   req.RegistrationEnd,
		ClassStart:        req.ClassStart,
		ClassEnd:          req.ClassEnd,
		Duration:          req.Duration,
		RegistrationFee:   0,
		Status:            models.StatusPending,
	}
	if err := h.db.Create(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(session)
}

type UpdateStatusRequest struct {
	Status          models.SessionStatus `json:"status"`
	RejectionReason string               `json:"rejectionReason"`
	Feedback        string               `json:"feedback"`
}

// UpdateStatus is the generic admin transition endpoint. Rejection
// records reason and feedback; moving back to pending clears them.
func (h *SessionHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if !req.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	}

	updates := map[string]interface{}{
		"status": req.Status,
	}
	switch req.Status {
	case models.StatusRejected:
		reason := req.RejectionReason
		if reason == "" {
			reason = "No reason provided"
		}
		updates["rejection_reason"] = reason
		updates["rejection_feedback"] = req.Feedback
	case models.StatusPending:
		updates["rejection_reason"] = nil
		updates["rejection_feedback"] = nil
	}

	result := h.db.Model(&models.Session{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found"})
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Session updated to %s", req.Status)})
}

type ApproveSessionRequest struct {
	IsPaid bool    `json:"isPaid"`
	Fee    float64 `json:"fee"`
}

// ApproveSession transitions a pending session to approved. The fee from
// the request only sticks when the paid flag is set.
func (h *SessionHandler) ApproveSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session ID"})
	}

	var req ApproveSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	fee := 0.0
	if req.IsPaid {
		fee = req.Fee
	}

	result := h.db.Model(&models.Session{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":           models.StatusApproved,
			"registration_fee": fee,
			"approved_at":      time.Now(),
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found or not pending"})
	}

	return c.JSON(fiber.Map{"success": true})
}

type RejectSessionRequest struct {
	Reason   string `json:"reason"`
	Feedback string `json:"feedback"`
}

// RejectSession transitions a pending session to rejected.
func (h *SessionHandler) RejectSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session ID"})
	}

	var req RejectSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}

	result := h.db.Model(&models.Session{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Updates(map[string]interface{}{
			"status":             models.StatusRejected,
			"rejection_reason":   req.Reason,
			"rejection_feedback": req.Feedback,
			"rejected_at":        time.Now(),
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found or not pending"})
	}

	return c.JSON(fiber.Map{"success": true})
}

type UpdateSessionRequest struct {
	Status models.SessionStatus `json:"status"`
}

// UpdateSession handles tutor resubmission: an optional status change
// that always clears rejection metadata.
func (h *SessionHandler) UpdateSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session ID"})
	}

	var req UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if req.Status != "" && !req.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status"})
	}

	updates := map[string]interface{}{
		"rejection_reason":   nil,
		"rejection_feedback": nil,
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}

	result := h.db.Model(&models.Session{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update session"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found"})
	}

	return c.JSON(fiber.Map{"message": "Session updated", "modifiedCount": result.RowsAffected})
}

// DeleteSession removes a session unconditionally, whatever its status.
func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session ID"})
	}

	result := h.db.Delete(&models.Session{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete session"})
	}

	return c.JSON(fiber.Map{"deletedCount": result.RowsAffected})
}
