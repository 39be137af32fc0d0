package handlers

import (
	"errors"
	"math"

	"github.com/edupulse/edupulse_server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

func (h *ReviewHandler) ListSessionReviews(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if uuid.Validate(sessionID) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session ID"})
	}

	var reviews []models.Review
	if err := h.db.Where("session_id = ?", sessionID).Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(reviews)
}

type CreateReviewRequest struct {
	SessionID    string   `json:"sessionId" validate:"required,uuid"`
	StudentEmail string   `json:"studentEmail" validate:"required,email"`
	StudentName  string   `json:"studentName"`
	Rating       *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	Comment      string   `json:"comment"`
}

// CreateReview inserts a review and recomputes the owning session's
// average rating (mean of all ratings, rounded to one decimal) in the
// same transaction, so concurrent reviews cannot leave a stale average.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	review := models.Review{
		SessionID:    req.SessionID,
		StudentEmail: req.StudentEmail,
		StudentName:  req.StudentName,
		Rating:       *req.Rating,
		Comment:      req.Comment,
	}

	var average float64
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var session models.Session
		if err := tx.First(&session, "id = ?", req.SessionID).Error; err != nil {
			return err
		}

		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var result struct{ Avg float64 }
		if err := tx.Model(&models.Review{}).
			Where("session_id = ?", req.SessionID).
			Select("COALESCE(AVG(rating), 0) as avg").
			Scan(&result).Error; err != nil {
			return err
		}

		average = math.Round(result.Avg*10) / 10
		return tx.Model(&models.Session{}).
			Where("id = ?", req.SessionID).
			Update("average_rating", average).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Session not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"insertedId": review.ID, "averageRating": average})
}
