package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the personal details attached to a user, one row per user.
type Profile struct {
	ID        string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string  `gorm:"uniqueIndex;type:varchar(36);not null" json:"user_id"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	CreatedAt string  `gorm:"type:varchar(64)" json:"created_at"`
	UpdatedAt string  `gorm:"type:varchar(64)" json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}
