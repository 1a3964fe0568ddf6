package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackSubmission is an append-only record of user feedback; content
// reports are stored here too with a synthesized content string.
type FeedbackSubmission struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string `gorm:"index;type:varchar(36);not null" json:"user_id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	CreatedAt string `gorm:"type:varchar(64)" json:"created_at"`
}

func (f *FeedbackSubmission) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return nil
}
