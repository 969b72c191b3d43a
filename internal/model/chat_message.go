package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SenderStudent = "student"
	SenderAI      = "ai"
)

// ChatMessage is append-only; messages are never edited or deleted except
// through the assignment cascade.
type ChatMessage struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	AssignmentID string    `json:"assignment_id" gorm:"not null;index;type:uuid"`
	Sender       string    `json:"sender" gorm:"not null"` // "student" or "ai"
	Content      string    `json:"content" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
