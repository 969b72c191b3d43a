package repository

import (
	"github.com/adnanfr/Binturong/internal/model"
	"gorm.io/gorm"
)

type ChatMessageRepository interface {
	Create(message *model.ChatMessage) error
	FindByAssignmentID(assignmentID string) ([]model.ChatMessage, error)
}

type chatMessageRepository struct {
	db *gorm.DB
}

func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

func (r *chatMessageRepository) Create(message *model.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *chatMessageRepository) FindByAssignmentID(assignmentID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.db.
		Where("assignment_id = ?", assignmentID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}
