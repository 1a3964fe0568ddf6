package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GeneratedImage records one produced image together with the text input
// it was generated from.
type GeneratedImage struct {
	ID        string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ImageURL  string     `gorm:"not null" json:"image_url"`
	UserID    string     `gorm:"index;type:varchar(36);not null" json:"user_id"`
	CreatedAt string     `gorm:"type:varchar(64)" json:"created_at"`
	TextInput *TextInput `gorm:"foreignKey:GeneratedImageID" json:"text_input,omitempty"`
}

func (g *GeneratedImage) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return nil
}
