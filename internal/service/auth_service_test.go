package service

import (
	"errors"
	"testing"

	"github.com/adnanfr/Binturong/config"
	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/auth"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	byEmail map[string]*model.User
}

func (r *stubUserRepo) Create(user *model.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newAuthFixture(t *testing.T) (AuthService, *stubUserRepo, *stubStudentRepo, *config.Config) {
	t.Helper()
	userRepo := &stubUserRepo{byEmail: make(map[string]*model.User)}
	studentRepo := &stubStudentRepo{students: map[string]*model.Student{
		"12345": {NIM: "12345", Name: "Siti Rahma"},
	}}
	cfg := &config.Config{JWTSecret: "auth-test-secret"}
	return NewAuthService(userRepo, studentRepo, cfg), userRepo, studentRepo, cfg
}

func TestAuthenticateStudent(t *testing.T) {
	svc, _, _, cfg := newAuthFixture(t)

	student, token, err := svc.AuthenticateStudent("12345")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if student.NIM != "12345" || student.Name != "Siti Rahma" {
		t.Errorf("unexpected student: %+v", student)
	}

	claims, err := auth.ParseToken(cfg.JWTSecret, token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != "12345" || claims.UserType != auth.RoleStudent {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAuthenticateStudentUnknownNIM(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	if _, _, err := svc.AuthenticateStudent("99999"); !errors.Is(err, apperror.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestAuthenticateLecturer(t *testing.T) {
	svc, _, _, cfg := newAuthFixture(t)

	if _, err := svc.RegisterLecturer("drs@univ.ac.id", "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := svc.AuthenticateLecturer("drs@univ.ac.id", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "drs@univ.ac.id" {
		t.Errorf("unexpected user: %+v", user)
	}
	claims, err := auth.ParseToken(cfg.JWTSecret, token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserType != auth.RoleLecturer {
		t.Errorf("user_type = %q, want lecturer", claims.UserType)
	}
}

func TestAuthenticateLecturerRejections(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	if _, err := svc.RegisterLecturer("drs@univ.ac.id", "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, _, unknownErr := svc.AuthenticateLecturer("nobody@univ.ac.id", "correct-horse")
	_, _, wrongPwErr := svc.AuthenticateLecturer("drs@univ.ac.id", "wrong-password")
	for _, err := range []error{unknownErr, wrongPwErr} {
		if !errors.Is(err, apperror.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	}
}

func TestRegisterLecturerStoresHash(t *testing.T) {
	svc, userRepo, _, _ := newAuthFixture(t)

	if _, err := svc.RegisterLecturer("drs@univ.ac.id", "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}
	stored := userRepo.byEmail["drs@univ.ac.id"]
	if stored.PasswordHash == "correct-horse" {
		t.Error("password stored in plain text")
	}
	if err := auth.CheckPassword(stored.PasswordHash, "correct-horse"); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterLecturerDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	if _, err := svc.RegisterLecturer("drs@univ.ac.id", "correct-horse"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.RegisterLecturer("drs@univ.ac.id", "other-password"); !errors.Is(err, apperror.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestUploadRoster(t *testing.T) {
	svc, _, studentRepo, _ := newAuthFixture(t)

	count, err := svc.UploadRoster([]dto.RosterStudentDTO{
		{NIM: " 11111 ", Name: "Andi"},
		{NIM: "22222", Name: "Budi"},
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if len(studentRepo.upserted) != 2 || studentRepo.upserted[0].NIM != "11111" {
		t.Errorf("roster rows not normalized before upsert: %+v", studentRepo.upserted)
	}
}

func TestUploadRosterRejectsBadRowBeforeWriting(t *testing.T) {
	svc, _, studentRepo, _ := newAuthFixture(t)

	_, err := svc.UploadRoster([]dto.RosterStudentDTO{
		{NIM: "11111", Name: "Andi"},
		{NIM: "   ", Name: "No NIM"},
	})
	var vErr *apperror.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(studentRepo.upserted) != 0 {
		t.Error("rows written despite an invalid entry in the batch")
	}
}
