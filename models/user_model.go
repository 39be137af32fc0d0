package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Email string `gorm:"size:255;not null;unique" json:"email"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Photo string `gorm:"type:text" json:"photo"`
	Role  Role   `gorm:"size:20;not null;default:'student'" json:"role"`

	PendingTutor       bool       `gorm:"default:false" json:"pendingTutor"`
	PendingReason      *string    `gorm:"type:text" json:"pendingReason,omitempty"`
	PendingRequestedAt *time.Time `json:"pendingRequestedAt,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleStudent
	}
	return nil
}
