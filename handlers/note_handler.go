package handlers

import (
	"github.com/edupulse/edupulse_server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteHandler struct {
	db *gorm.DB
}

func NewNoteHandler(db *gorm.DB) *NoteHandler {
	return &NoteHandler{db: db}
}

type CreateNoteRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var req CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	note := models.Note{
		Email:       req.Email,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.db.Create(&note).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Note created", "insertedId": note.ID})
}

// ListNotes returns a student's notes, newest first.
func (h *NoteHandler) ListNotes(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}

	var notes []models.Note
	if err := h.db.Where("email = ?", email).Order("created_at desc").Find(&notes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(notes)
}

type UpdateNoteRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid note ID"})
	}

	var req UpdateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	result := h.db.Model(&models.Note{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
	})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Note not found"})
	}

	return c.JSON(fiber.Map{"message": "Note updated", "modifiedCount": result.RowsAffected})
}

func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid note ID"})
	}

	result := h.db.Delete(&models.Note{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Note not found"})
	}

	return c.JSON(fiber.Map{"message": "Note deleted"})
}
