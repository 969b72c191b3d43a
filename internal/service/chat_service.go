package service

import (
	"context"
	"fmt"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/auth"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/adnanfr/Binturong/internal/repository"
	"github.com/rs/zerolog/log"
)

type ChatService interface {
	ListMessages(ctx context.Context, assignmentID string, caller auth.Claims) ([]dto.ChatMessageDTO, error)
	SendMessage(ctx context.Context, assignmentID, studentNIM, content string) (*dto.ChatReplyResponse, error)
}

type chatService struct {
	chatRepo      repository.ChatMessageRepository
	assignmentSvc AssignmentService
	gemini        GeminiService
}

func NewChatService(chatRepo repository.ChatMessageRepository, assignmentSvc AssignmentService, gemini GeminiService) ChatService {
	return &chatService{chatRepo: chatRepo, assignmentSvc: assignmentSvc, gemini: gemini}
}

func (s *chatService) ListMessages(ctx context.Context, assignmentID string, caller auth.Claims) ([]dto.ChatMessageDTO, error) {
	assignment, err := s.assignmentSvc.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if caller.UserType == auth.RoleStudent && assignment.StudentNIM != caller.UserID {
		return nil, apperror.ErrForbidden
	}

	messages, err := s.chatRepo.FindByAssignmentID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	return toChatMessageDTOs(messages), nil
}

// SendMessage persists the student's message, asks the Actor for the
// stakeholder's reply and persists that too. If the Actor fails, the
// student message stays recorded and the error surfaces; the student simply
// sends again.
func (s *chatService) SendMessage(ctx context.Context, assignmentID, studentNIM, content string) (*dto.ChatReplyResponse, error) {
	assignment, err := s.assignmentSvc.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.StudentNIM != studentNIM {
		return nil, apperror.ErrForbidden
	}

	scenario, err := assignment.Scenario()
	if err != nil {
		log.Error().Err(err).Str("assignment_id", assignment.ID).Msg("Stored scenario blob failed shape check")
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	// History is captured before the new message is stored; the Actor
	// prompt receives the new message separately.
	history, err := s.chatRepo.FindByAssignmentID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	studentMsg := &model.ChatMessage{
		AssignmentID: assignmentID,
		Sender:       model.SenderStudent,
		Content:      content,
	}
	if err := s.chatRepo.Create(studentMsg); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	reply, err := s.gemini.GenerateChatReply(ctx, scenario, history, content)
	if err != nil {
		return nil, err
	}

	aiMsg := &model.ChatMessage{
		AssignmentID: assignmentID,
		Sender:       model.SenderAI,
		Content:      reply,
	}
	if err := s.chatRepo.Create(aiMsg); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	return &dto.ChatReplyResponse{
		Success:   true,
		Response:  reply,
		Timestamp: aiMsg.CreatedAt,
	}, nil
}
