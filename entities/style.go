package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Style is a catalog entry describing a visual theme images can be
// generated in. Names are unique across the platform.
type Style struct {
	ID          string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string  `gorm:"unique;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   string  `gorm:"type:varchar(64)" json:"created_at"`
}

func (s *Style) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return nil
}
