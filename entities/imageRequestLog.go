package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageRequestLog is the append-only audit record written for every
// generation request before the image row itself.
type ImageRequestLog struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string     `gorm:"index;type:varchar(36);not null" json:"user_id"`
	Success     bool       `json:"success"`
	RequestTime string     `gorm:"type:varchar(64)" json:"request_time"`
	TextInput   *TextInput `gorm:"foreignKey:ImageRequestLogID" json:"text_input,omitempty"`
}

func (l *ImageRequestLog) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.RequestTime == "" {
		l.RequestTime = time.Now().UTC().Format(time.RFC3339)
	}
	return nil
}
