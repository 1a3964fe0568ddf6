package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TextInput is the text a generation request was based on. Each row is
// attached to either a GeneratedImage or an ImageRequestLog. StyleID is a
// free reference into the style catalog and is not enforced as a foreign
// key, so deleting a style leaves it dangling.
type TextInput struct {
	ID                string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	InputText         string  `gorm:"type:text;not null" json:"input_text"`
	UserID            string  `gorm:"index;type:varchar(36)" json:"user_id"`
	StyleID           *string `gorm:"type:varchar(36)" json:"style_id,omitempty"`
	Language          string  `gorm:"type:varchar(16)" json:"language"`
	GeneratedImageID  *string `gorm:"index;type:varchar(36)" json:"generated_image_id,omitempty"`
	ImageRequestLogID *string `gorm:"index;type:varchar(36)" json:"image_request_log_id,omitempty"`
}

func (t *TextInput) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
