package repositories

import (
	"errors"

	"imagemaker-server/db"
	"imagemaker-server/entities"

	"gorm.io/gorm"
)

type stylePgRepository struct {
	db db.Database
}

func NewStylePgRepository(database db.Database) StyleRepository {
	return &stylePgRepository{db: database}
}

func (r *stylePgRepository) Create(style *entities.Style) error {
	return r.db.GetDB().Create(style).Error
}

func (r *stylePgRepository) GetByID(id string) (*entities.Style, error) {
	var style entities.Style
	err := r.db.GetDB().Where("id = ?", id).First(&style).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &style, nil
}

func (r *stylePgRepository) GetByName(name string) (*entities.Style, error) {
	var style entities.Style
	err := r.db.GetDB().Where("name = ?", name).First(&style).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &style, nil
}

func (r *stylePgRepository) GetAll() ([]entities.Style, error) {
	var styles []entities.Style
	err := r.db.GetDB().Order("created_at").Find(&styles).Error
	return styles, err
}

func (r *stylePgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Style{}).Error
}
