package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is immutable once created; there is no update or delete endpoint.
type Review struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID    string  `gorm:"type:uuid;not null;index" json:"sessionId"`
	StudentEmail string  `gorm:"size:255;not null" json:"studentEmail"`
	StudentName  string  `gorm:"size:255" json:"studentName"`
	Rating       float64 `gorm:"not null" json:"rating"`
	Comment      string  `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
