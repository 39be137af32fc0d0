package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookedSession links a student to a session. The composite unique index
// makes the duplicate-booking check a single atomic insert.
type BookedSession struct {
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	StudentEmail string `gorm:"size:255;not null;uniqueIndex:idx_student_session" json:"studentEmail"`
	SessionID    string `gorm:"type:uuid;not null;uniqueIndex:idx_student_session" json:"sessionId"`
	TutorEmail   string `gorm:"size:255;not null" json:"tutorEmail"`

	BookedAt  time.Time `json:"bookedAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *BookedSession) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.BookedAt.IsZero() {
		b.BookedAt = time.Now()
	}
	return nil
}
