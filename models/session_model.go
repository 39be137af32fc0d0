package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionStatus is the closed set of session lifecycle states.
// Allowed transitions: pending -> approved, pending -> rejected,
// rejected -> pending (resubmission).
type SessionStatus string

const (
	StatusPending  SessionStatus = "pending"
	StatusApproved SessionStatus = "approved"
	StatusRejected SessionStatus = "rejected"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Session struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	TutorName   string `gorm:"size:255;not null" json:"tutorName"`
	TutorEmail  string `gorm:"size:255;not null;index" json:"tutorEmail"`

	// Schedule fields are opaque display strings supplied by the client.
	RegistrationStart string `gorm:"size:64" json:"registrationStart"`
	RegistrationEnd   string `gorm:"size:64" json:"registrationEnd"`
	ClassStart        string `gorm:"size:64" json:"classStart"`
	ClassEnd          string `gorm:"size:64" json:"classEnd"`
	Duration          string `gorm:"size:64" json:"duration"`

	RegistrationFee float64       `gorm:"type:numeric(10,2);not null;default:0" json:"registrationFee"`
	Status          SessionStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`

	RejectionReason   *string    `gorm:"type:text" json:"rejectionReason,omitempty"`
	RejectionFeedback *string    `gorm:"type:text" json:"rejectionFeedback,omitempty"`
	AverageRating     *float64   `gorm:"type:numeric(3,1)" json:"averageRating,omitempty"`
	ApprovedAt        *time.Time `json:"approvedAt,omitempty"`
	RejectedAt        *time.Time `json:"rejectedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
