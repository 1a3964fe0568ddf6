package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a registered account on the platform.
type User struct {
	ID             string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email          string `gorm:"unique;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	CreatedAt      string `gorm:"type:varchar(64)" json:"created_at"`
	UpdatedAt      string `gorm:"type:varchar(64)" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}
