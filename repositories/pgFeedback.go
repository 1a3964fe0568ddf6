package repositories

import (
	"imagemaker-server/db"
	"imagemaker-server/entities"
)

type feedbackPgRepository struct {
	db db.Database
}

func NewFeedbackPgRepository(database db.Database) FeedbackRepository {
	return &feedbackPgRepository{db: database}
}

func (r *feedbackPgRepository) Create(submission *entities.FeedbackSubmission) error {
	return r.db.GetDB().Create(submission).Error
}
