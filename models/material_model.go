package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Material struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID  string `gorm:"type:uuid;not null;index" json:"sessionId"`
	TutorEmail string `gorm:"size:255;not null;index" json:"tutorEmail"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Link       string `gorm:"type:text" json:"link"`
	Image      string `gorm:"type:text" json:"image"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
