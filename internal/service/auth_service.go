package service

import (
	"errors"
	"fmt"

	"github.com/adnanfr/Binturong/config"
	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/auth"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/adnanfr/Binturong/internal/repository"
	"github.com/adnanfr/Binturong/internal/validator"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuthService interface {
	AuthenticateStudent(nim string) (*dto.StudentDTO, string, error)
	AuthenticateLecturer(email, password string) (*dto.UserDTO, string, error)
	RegisterLecturer(email, password string) (*dto.UserDTO, error)
	UploadRoster(students []dto.RosterStudentDTO) (int, error)
}

type authService struct {
	userRepo    repository.UserRepository
	studentRepo repository.StudentRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, studentRepo repository.StudentRepository, cfg *config.Config) AuthService {
	return &authService{userRepo: userRepo, studentRepo: studentRepo, cfg: cfg}
}

// AuthenticateStudent is identifier-only: possession of a rostered NIM is
// the whole credential.
func (s *authService) AuthenticateStudent(nim string) (*dto.StudentDTO, string, error) {
	student, err := s.studentRepo.FindByNIM(nim)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperror.ErrStudentNotFound
		}
		return nil, "", fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	token, err := auth.NewToken(s.cfg.JWTSecret, student.NIM, auth.RoleStudent)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	studentDTO := toStudentDTO(student)
	return &studentDTO, token, nil
}

func (s *authService) AuthenticateLecturer(email, password string) (*dto.UserDTO, string, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same error as a password mismatch so responses never reveal
			// whether the email exists.
			return nil, "", apperror.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, "", apperror.ErrInvalidCredentials
	}

	token, err := auth.NewToken(s.cfg.JWTSecret, user.Email, auth.RoleLecturer)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	userDTO := toUserDTO(user)
	return &userDTO, token, nil
}

func (s *authService) RegisterLecturer(email, password string) (*dto.UserDTO, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	user := &model.User{Email: email, PasswordHash: hash}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", apperror.ErrConflict)
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to create lecturer")
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	userDTO := toUserDTO(user)
	return &userDTO, nil
}

// UploadRoster bulk-upserts a student roster. Every NIM is validated before
// any row is written, so a bad row fails the whole upload with no partial
// side effects.
func (s *authService) UploadRoster(students []dto.RosterStudentDTO) (int, error) {
	toInsert := make([]model.Student, 0, len(students))
	for _, entry := range students {
		nim, err := validator.NIM(entry.NIM)
		if err != nil {
			return 0, err
		}
		toInsert = append(toInsert, model.Student{NIM: nim, Name: entry.Name})
	}

	count, err := s.studentRepo.UpsertMany(toInsert)
	if err != nil {
		log.Error().Err(err).Int("count", len(toInsert)).Msg("Roster upsert failed")
		return 0, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	log.Info().Int("count", count).Msg("Roster uploaded")
	return count, nil
}
