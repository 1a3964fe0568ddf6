package repositories

import "imagemaker-server/entities"

// Lookups return (nil, nil) when no row matches; hard errors are only
// returned for real persistence failures.

type UserRepository interface {
	CreateWithProfile(user *entities.User, profile *entities.Profile) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	UpdateProfile(userID string, firstName, lastName *string) error
	UpsertPreferences(userID string, theme, language *string) error
}

type StyleRepository interface {
	Create(style *entities.Style) error
	GetByID(id string) (*entities.Style, error)
	GetByName(name string) (*entities.Style, error)
	GetAll() ([]entities.Style, error)
	Delete(id string) error
}

type ImageRepository interface {
	CreateGeneratedImage(image *entities.GeneratedImage) error
	CreateRequestLog(logEntry *entities.ImageRequestLog) error
	GetGeneratedImageByID(id string) (*entities.GeneratedImage, error)
}

type FeedbackRepository interface {
	Create(submission *entities.FeedbackSubmission) error
}
