package model

import "time"

// Grade is keyed by the assignment so each assignment carries at most one;
// grading again overwrites score and feedback in place.
type Grade struct {
	AssignmentID string    `json:"assignment_id" gorm:"primaryKey;type:uuid"`
	Score        int       `json:"score" gorm:"not null"`
	Feedback     *string   `json:"feedback,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
