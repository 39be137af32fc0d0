package handlers

import (
	"github.com/edupulse/edupulse_server/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialHandler struct {
	db *gorm.DB
}

func NewMaterialHandler(db *gorm.DB) *MaterialHandler {
	return &MaterialHandler{db: db}
}

type CreateMaterialRequest struct {
	SessionID  string `json:"sessionId" validate:"required,uuid"`
	TutorEmail string `json:"tutorEmail" validate:"required,email"`
	Title      string `json:"title" validate:"required"`
	Link       string `json:"link"`
	Image      string `json:"image"`
}

func (h *MaterialHandler) CreateMaterial(c *fiber.Ctx) error {
	var req CreateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	material := models.Material{
		SessionID:  req.SessionID,
		TutorEmail: req.TutorEmail,
		Title:      req.Title,
		Link:       req.Link,
		Image:      req.Image,
	}
	if err := h.db.Create(&material).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(material)
}

// ListMaterials scopes results to the uploading tutor when role=tutor;
// admins see everything.
func (h *MaterialHandler) ListMaterials(c *fiber.Ctx) error {
	email := c.Query("email")
	role := c.Query("role")

	query := h.db.Model(&models.Material{})
	if role == string(models.RoleTutor) && email != "" {
		query = query.Where("tutor_email = ?", email)
	}

	var materials []models.Material
	if err := query.Find(&materials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(materials)
}

// ListSessionMaterials is the student-facing fetch by session.
func (h *MaterialHandler) ListSessionMaterials(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if uuid.Validate(sessionID) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid session ID"})
	}

	var materials []models.Material
	if err := h.db.Where("session_id = ?", sessionID).Find(&materials).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(materials)
}

type UpdateMaterialRequest struct {
	Title string `json:"title" validate:"required"`
	Link  string `json:"link"`
	Image string `json:"image"`
}

// UpdateMaterial patches the content fields only; a client-supplied id
// can never overwrite the record identity.
func (h *MaterialHandler) UpdateMaterial(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid material ID"})
	}

	var req UpdateMaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Missing required fields"})
	}

	result := h.db.Model(&models.Material{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title": req.Title,
		"link":  req.Link,
		"image": req.Image,
	})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Material not found"})
	}

	return c.JSON(fiber.Map{"message": "Material updated", "modifiedCount": result.RowsAffected})
}

func (h *MaterialHandler) DeleteMaterial(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid material ID"})
	}

	result := h.db.Delete(&models.Material{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"deletedCount": result.RowsAffected})
}
