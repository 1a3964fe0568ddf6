package repositories

import (
	"errors"

	"imagemaker-server/db"
	"imagemaker-server/entities"

	"gorm.io/gorm"
)

type imagePgRepository struct {
	db db.Database
}

func NewImagePgRepository(database db.Database) ImageRepository {
	return &imagePgRepository{db: database}
}

// CreateGeneratedImage inserts the image row and its attached text input
// in one transaction (GORM persists the association from the struct).
func (r *imagePgRepository) CreateGeneratedImage(image *entities.GeneratedImage) error {
	return r.db.GetDB().Create(image).Error
}

// CreateRequestLog appends an audit record with its attached text input.
func (r *imagePgRepository) CreateRequestLog(logEntry *entities.ImageRequestLog) error {
	return r.db.GetDB().Create(logEntry).Error
}

func (r *imagePgRepository) GetGeneratedImageByID(id string) (*entities.GeneratedImage, error) {
	var image entities.GeneratedImage
	err := r.db.GetDB().Where("id = ?", id).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}
