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

type SubmissionService interface {
	ListByAssignment(ctx context.Context, assignmentID string, caller auth.Claims) ([]dto.SubmissionDTO, error)
	Create(ctx context.Context, studentNIM, assignmentID, linkURL, submissionType string) (*dto.SubmissionDTO, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	assignmentSvc  AssignmentService
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository, assignmentSvc AssignmentService) SubmissionService {
	return &submissionService{submissionRepo: submissionRepo, assignmentSvc: assignmentSvc}
}

func (s *submissionService) ListByAssignment(ctx context.Context, assignmentID string, caller auth.Claims) ([]dto.SubmissionDTO, error) {
	assignment, err := s.assignmentSvc.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if caller.UserType == auth.RoleStudent && assignment.StudentNIM != caller.UserID {
		return nil, apperror.ErrForbidden
	}

	submissions, err := s.submissionRepo.FindByAssignmentID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	return toSubmissionDTOs(submissions), nil
}

func (s *submissionService) Create(ctx context.Context, studentNIM, assignmentID, linkURL, submissionType string) (*dto.SubmissionDTO, error) {
	assignment, err := s.assignmentSvc.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.StudentNIM != studentNIM {
		return nil, apperror.ErrForbidden
	}

	submission := &model.Submission{
		AssignmentID:   assignmentID,
		LinkURL:        linkURL,
		SubmissionType: submissionType,
	}
	if err := s.submissionRepo.Create(submission); err != nil {
		log.Error().Err(err).Str("assignment_id", assignmentID).Msg("Failed to create submission")
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	d := toSubmissionDTOs([]model.Submission{*submission})[0]
	return &d, nil
}
