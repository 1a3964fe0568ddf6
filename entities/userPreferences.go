package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPreferences stores theme and language settings, one row per user,
// updated in place.
type UserPreferences struct {
	ID        string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string  `gorm:"uniqueIndex;type:varchar(36);not null" json:"user_id"`
	Theme     *string `gorm:"type:varchar(64)" json:"theme,omitempty"`
	Language  *string `gorm:"type:varchar(16)" json:"language,omitempty"`
	UpdatedAt string  `gorm:"type:varchar(64)" json:"updated_at"`
}

func (p *UserPreferences) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return nil
}
