package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/adnanfr/Binturong/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssignmentService implements just-in-time provisioning: an assignment is
// generated on the student's first access and cached in the database; every
// later access is a plain read. Regeneration is a delete followed by the
// next access generating fresh.
type AssignmentService interface {
	GetOrCreate(ctx context.Context, nim string) (*dto.AssignmentDTO, error)
	Delete(ctx context.Context, nim string) error
	GetByID(ctx context.Context, id string) (*model.Assignment, error)
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
	studentRepo    repository.StudentRepository
	datasetRepo    repository.DatasetRepository
	gemini         GeminiService
}

func NewAssignmentService(
	assignmentRepo repository.AssignmentRepository,
	studentRepo repository.StudentRepository,
	datasetRepo repository.DatasetRepository,
	gemini GeminiService,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		studentRepo:    studentRepo,
		datasetRepo:    datasetRepo,
		gemini:         gemini,
	}
}

func (s *assignmentService) GetOrCreate(ctx context.Context, nim string) (*dto.AssignmentDTO, error) {
	assignment, err := s.assignmentRepo.FindByStudentNIM(nim)
	if err == nil {
		return s.toDTO(assignment)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("nim", nim).Msg("Assignment lookup failed")
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	return s.create(ctx, nim)
}

func (s *assignmentService) create(ctx context.Context, nim string) (*dto.AssignmentDTO, error) {
	student, err := s.studentRepo.FindByNIM(nim)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrStudentNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	datasets, err := s.datasetRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	if len(datasets) == 0 {
		return nil, apperror.ErrNoDatasets
	}
	dataset := datasets[rand.IntN(len(datasets))]

	// No transaction spans generation and persistence. If the insert below
	// fails, the generated scenario is simply discarded and the next call
	// regenerates; assignments are idempotent once stored.
	scenario, err := s.gemini.GenerateScenario(ctx, student, &dataset)
	if err != nil {
		return nil, err
	}

	assignment := &model.Assignment{
		StudentNIM: nim,
		DatasetID:  dataset.ID,
	}
	if err := assignment.SetScenario(scenario); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	if err := s.assignmentRepo.Create(assignment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent first access won the race. First writer wins:
			// drop this scenario and serve the stored assignment.
			log.Warn().Str("nim", nim).Msg("Concurrent provisioning detected, returning stored assignment")
			winner, readErr := s.assignmentRepo.FindByStudentNIM(nim)
			if readErr != nil {
				return nil, fmt.Errorf("%w: %v", apperror.ErrConflict, readErr)
			}
			return s.toDTO(winner)
		}
		log.Error().Err(err).Str("nim", nim).Msg("Failed to persist assignment")
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	assignment.Dataset = dataset

	log.Info().Str("nim", nim).Str("assignment_id", assignment.ID).Str("dataset", dataset.Name).Msg("Assignment provisioned")
	return s.toDTO(assignment)
}

func (s *assignmentService) Delete(ctx context.Context, nim string) error {
	// Idempotent: deleting a missing assignment reports success too.
	if err := s.assignmentRepo.DeleteByStudentNIM(nim); err != nil {
		log.Error().Err(err).Str("nim", nim).Msg("Failed to delete assignment")
		return fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	return nil
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*model.Assignment, error) {
	assignment, err := s.assignmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	return assignment, nil
}

func (s *assignmentService) toDTO(assignment *model.Assignment) (*dto.AssignmentDTO, error) {
	scenario, err := assignment.Scenario()
	if err != nil {
		log.Error().Err(err).Str("assignment_id", assignment.ID).Msg("Stored scenario blob failed shape check")
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	return &dto.AssignmentDTO{
		ID:         assignment.ID,
		StudentNIM: assignment.StudentNIM,
		Dataset:    toDatasetDTO(&assignment.Dataset),
		Scenario:   toScenarioDTO(scenario),
		CreatedAt:  assignment.CreatedAt,
	}, nil
}
