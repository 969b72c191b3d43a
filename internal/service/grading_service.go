package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/adnanfr/Binturong/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type GradingService interface {
	ListStudents(ctx context.Context, page, limit int) ([]dto.GradingEntryDTO, int64, int, int, error)
	SearchStudents(ctx context.Context, query string) ([]dto.GradingEntryDTO, error)
	UpsertGrade(ctx context.Context, assignmentID string, score int, feedback *string) (*dto.GradeDTO, error)
}

type gradingService struct {
	studentRepo    repository.StudentRepository
	assignmentRepo repository.AssignmentRepository
	submissionRepo repository.SubmissionRepository
	gradeRepo      repository.GradeRepository
}

func NewGradingService(
	studentRepo repository.StudentRepository,
	assignmentRepo repository.AssignmentRepository,
	submissionRepo repository.SubmissionRepository,
	gradeRepo repository.GradeRepository,
) GradingService {
	return &gradingService{
		studentRepo:    studentRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
		gradeRepo:      gradeRepo,
	}
}

// ListStudents returns one enriched entry per rostered student: their
// assignment (if provisioned), all submissions newest-first, and the grade
// if one was given. Students without an assignment still appear so the
// lecturer sees who has not started.
func (s *gradingService) ListStudents(ctx context.Context, page, limit int) ([]dto.GradingEntryDTO, int64, int, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	students, total, err := s.studentRepo.FindPage((page-1)*limit, limit)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	entries, err := s.enrich(students)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return entries, total, page, limit, nil
}

// SearchStudents matches NIM or name by case-insensitive substring.
func (s *gradingService) SearchStudents(ctx context.Context, query string) ([]dto.GradingEntryDTO, error) {
	students, err := s.studentRepo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	return s.enrich(students)
}

func (s *gradingService) enrich(students []model.Student) ([]dto.GradingEntryDTO, error) {
	entries := make([]dto.GradingEntryDTO, 0, len(students))
	for i := range students {
		entry := dto.GradingEntryDTO{
			Student:     toStudentDTO(&students[i]),
			Submissions: []dto.SubmissionDTO{},
		}

		assignment, err := s.assignmentRepo.FindByStudentNIM(students[i].NIM)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
			}
			entries = append(entries, entry)
			continue
		}

		scenario, err := assignment.Scenario()
		if err != nil {
			log.Error().Err(err).Str("assignment_id", assignment.ID).Msg("Stored scenario blob failed shape check")
			return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
		}
		entry.Assignment = &dto.GradingAssignmentDTO{
			ID:        assignment.ID,
			Dataset:   toDatasetDTO(&assignment.Dataset),
			Scenario:  toScenarioDTO(scenario),
			CreatedAt: assignment.CreatedAt,
		}

		submissions, err := s.submissionRepo.FindByAssignmentID(assignment.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
		}
		entry.Submissions = toSubmissionDTOs(submissions)

		grade, err := s.gradeRepo.FindByAssignmentID(assignment.ID)
		if err == nil {
			g := toGradeDTO(grade)
			entry.Grade = &g
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// UpsertGrade creates or overwrites the single grade for an assignment.
func (s *gradingService) UpsertGrade(ctx context.Context, assignmentID string, score int, feedback *string) (*dto.GradeDTO, error) {
	if _, err := s.assignmentRepo.FindByID(assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	grade := &model.Grade{
		AssignmentID: assignmentID,
		Score:        score,
		Feedback:     feedback,
	}
	if err := s.gradeRepo.Upsert(grade); err != nil {
		log.Error().Err(err).Str("assignment_id", assignmentID).Msg("Grade upsert failed")
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	g := toGradeDTO(grade)
	return &g, nil
}
