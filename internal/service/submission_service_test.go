package service

import (
	"context"
	"errors"
	"testing"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/auth"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/google/uuid"
)

type stubSubmissionRepo struct {
	submissions []model.Submission
}

func (r *stubSubmissionRepo) Create(submission *model.Submission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	r.submissions = append(r.submissions, *submission)
	return nil
}

func (r *stubSubmissionRepo) FindByAssignmentID(assignmentID string) ([]model.Submission, error) {
	var out []model.Submission
	for _, s := range r.submissions {
		if s.AssignmentID == assignmentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func newSubmissionFixture(t *testing.T) (SubmissionService, *stubSubmissionRepo, *model.Assignment) {
	t.Helper()
	assignmentRepo := newStubAssignmentRepo()
	assignment := &model.Assignment{
		ID:         uuid.New().String(),
		StudentNIM: "12345",
		Dataset:    *testDataset(t),
	}
	if err := assignment.SetScenario(testScenario()); err != nil {
		t.Fatalf("set scenario: %v", err)
	}
	assignmentRepo.byNIM["12345"] = assignment

	assignmentSvc := NewAssignmentService(assignmentRepo, &stubStudentRepo{}, &stubDatasetRepo{}, &stubGemini{})
	submissionRepo := &stubSubmissionRepo{}
	return NewSubmissionService(submissionRepo, assignmentSvc), submissionRepo, assignment
}

func TestSubmissionCreateAndList(t *testing.T) {
	svc, repo, assignment := newSubmissionFixture(t)
	owner := auth.Claims{UserID: "12345", UserType: auth.RoleStudent}

	progress, err := svc.Create(context.Background(), "12345", assignment.ID, "https://colab.example.com/draft", model.SubmissionProgress)
	if err != nil {
		t.Fatalf("create progress: %v", err)
	}
	if progress.SubmissionType != model.SubmissionProgress || progress.LinkURL != "https://colab.example.com/draft" {
		t.Errorf("unexpected submission: %+v", progress)
	}
	if _, err := svc.Create(context.Background(), "12345", assignment.ID, "https://colab.example.com/final", model.SubmissionFinal); err != nil {
		t.Fatalf("create final: %v", err)
	}

	listed, err := svc.ListByAssignment(context.Background(), assignment.ID, owner)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed %d submissions, want 2", len(listed))
	}
	if len(repo.submissions) != 2 {
		t.Errorf("stored %d submissions, want 2", len(repo.submissions))
	}
}

func TestSubmissionForeignStudentForbidden(t *testing.T) {
	svc, repo, assignment := newSubmissionFixture(t)

	if _, err := svc.Create(context.Background(), "67890", assignment.ID, "https://colab.example.com/x", model.SubmissionFinal); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("create err = %v, want ErrForbidden", err)
	}
	if len(repo.submissions) != 0 {
		t.Error("submission persisted for a non-owner")
	}

	stranger := auth.Claims{UserID: "67890", UserType: auth.RoleStudent}
	if _, err := svc.ListByAssignment(context.Background(), assignment.ID, stranger); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("list err = %v, want ErrForbidden", err)
	}
}

func TestSubmissionLecturerCanList(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)
	if _, err := svc.Create(context.Background(), "12345", assignment.ID, "https://colab.example.com/final", model.SubmissionFinal); err != nil {
		t.Fatalf("create: %v", err)
	}

	lecturer := auth.Claims{UserID: uuid.New().String(), UserType: auth.RoleLecturer}
	listed, err := svc.ListByAssignment(context.Background(), assignment.ID, lecturer)
	if err != nil {
		t.Fatalf("lecturer list: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("lecturer sees %d submissions, want 1", len(listed))
	}
}

func TestSubmissionUnknownAssignment(t *testing.T) {
	svc, _, _ := newSubmissionFixture(t)
	if _, err := svc.Create(context.Background(), "12345", uuid.New().String(), "https://colab.example.com/x", model.SubmissionFinal); !errors.Is(err, apperror.ErrAssignmentNotFound) {
		t.Fatalf("err = %v, want ErrAssignmentNotFound", err)
	}
}
