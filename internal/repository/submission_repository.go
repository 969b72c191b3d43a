package repository

import (
	"github.com/adnanfr/Binturong/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByAssignmentID(assignmentID string) ([]model.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByAssignmentID(assignmentID string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.
		Where("assignment_id = ?", assignmentID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}
