package repositories

import (
	"errors"

	"imagemaker-server/db"
	"imagemaker-server/entities"

	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

// CreateWithProfile writes the user and its profile row together so a
// profile never exists without its account.
func (r *userPgRepository) CreateWithProfile(user *entities.User, profile *entities.Profile) error {
	return r.db.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *userPgRepository) GetByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites both name fields; nil clears the column.
func (r *userPgRepository) UpdateProfile(userID string, firstName, lastName *string) error {
	return r.db.GetDB().Model(&entities.Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"first_name": firstName,
			"last_name":  lastName,
		}).Error
}

// UpsertPreferences updates the user's preferences row in place, creating
// it on first use.
func (r *userPgRepository) UpsertPreferences(userID string, theme, language *string) error {
	res := r.db.GetDB().Model(&entities.UserPreferences{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"theme":    theme,
			"language": language,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.GetDB().Create(&entities.UserPreferences{
			UserID:   userID,
			Theme:    theme,
			Language: language,
		}).Error
	}
	return nil
}
