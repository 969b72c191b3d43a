package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SubmissionProgress = "progress"
	SubmissionFinal    = "final"
)

// Submission records a link the student handed in. Students may submit any
// number of times; rows are append-only.
type Submission struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	AssignmentID   string    `json:"assignment_id" gorm:"not null;index;type:uuid"`
	LinkURL        string    `json:"link_url" gorm:"not null"`
	SubmissionType string    `json:"submission_type" gorm:"not null"` // "progress" or "final"
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
