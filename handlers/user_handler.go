package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edupulse/edupulse_server/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// ListUsers returns all users, optionally narrowed by a case-insensitive
// substring match on name or email.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))

	query := h.db.Model(&models.User{})
	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(users)
}

// SearchByEmail matches users by email substring, capped at 50 results.
func (h *UserHandler) SearchByEmail(c *fiber.Ctx) error {
	term := "%" + strings.ToLower(strings.TrimSpace(c.Query("email"))) + "%"

	var users []models.User
	if err := h.db.Where("LOWER(email) LIKE ?", term).Limit(50).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(users)
}

func (h *UserHandler) GetRole(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	role := user.Role
	if role == "" {
		role = models.RoleStudent
	}
	return c.JSON(fiber.Map{"role": role})
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Photo string `json:"photo" validate:"required"`
}

// CreateUser is the signup endpoint. It is idempotent: signing up an
// existing email returns success without a second insert.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields required"})
	}

	var existing models.User
	err := h.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{"message": "User already exists", "inserted": false})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	user := models.User{
		Email: req.Email,
		Name:  req.Name,
		Photo: req.Photo,
		Role:  models.RoleStudent,
	}
	if err := h.db.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"inserted": true, "insertedId": user.ID})
}

type UpdateRoleRequest struct {
	Role models.Role `json:"role"`
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if req.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Role is required"})
	}
	if !req.Role.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid role"})
	}

	result := h.db.Model(&models.User{}).Where("id = ?", id).Update("role", req.Role)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	return c.JSON(fiber.Map{
		"message":       fmt.Sprintf("User role updated to %s", req.Role),
		"modifiedCount": result.RowsAffected,
	})
}

type RequestTutorRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Reason string `json:"reason"`
}

// RequestTutor flags a user as awaiting tutor approval.
func (h *UserHandler) RequestTutor(c *fiber.Ctx) error {
	var req RequestTutorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Email is required"})
	}

	result := h.db.Model(&models.User{}).Where("email = ?", req.Email).Updates(map[string]interface{}{
		"pending_tutor":        true,
		"pending_reason":       req.Reason,
		"pending_requested_at": time.Now(),
	})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(user)
}

type PendingTutorResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	PendingReason      *string    `json:"pendingReason"`
	PendingRequestedAt *time.Time `json:"pendingRequestedAt"`
}

func (h *UserHandler) ListPendingTutors(c *fiber.Ctx) error {
	var pending []PendingTutorResponse
	err := h.db.Model(&models.User{}).
		Where("pending_tutor = ?", true).
		Select("id, name, email, pending_reason, pending_requested_at").
		Scan(&pending).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(pending)
}

// ApproveTutor promotes a user with a pending request to the tutor role.
func (h *UserHandler) ApproveTutor(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	result := h.db.Model(&models.User{}).
		Where("id = ? AND pending_tutor = ?", id, true).
		Updates(map[string]interface{}{
			"role":                 models.RoleTutor,
			"approved_at":          time.Now(),
			"pending_tutor":        false,
			"pending_reason":       nil,
			"pending_requested_at": nil,
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No pending request found for this user"})
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(user)
}

// DeclineTutor clears a pending request and resets the role to student.
func (h *UserHandler) DeclineTutor(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	result := h.db.Model(&models.User{}).
		Where("id = ? AND pending_tutor = ?", id, true).
		Updates(map[string]interface{}{
			"role":                 models.RoleStudent,
			"pending_tutor":        false,
			"pending_reason":       nil,
			"pending_requested_at": nil,
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No pending request found for this user"})
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(fiber.Map{"message": "Tutor request declined", "user": user})
}
