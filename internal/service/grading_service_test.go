package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubGradeRepo struct {
	byAssignment map[string]*model.Grade
}

func newStubGradeRepo() *stubGradeRepo {
	return &stubGradeRepo{byAssignment: make(map[string]*model.Grade)}
}

func (r *stubGradeRepo) Upsert(grade *model.Grade) error {
	r.byAssignment[grade.AssignmentID] = grade
	return nil
}

func (r *stubGradeRepo) FindByAssignmentID(assignmentID string) (*model.Grade, error) {
	if g, ok := r.byAssignment[assignmentID]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// newGradingFixture rosters two students; only the first has a provisioned
// assignment, with one submission and a grade attached.
func newGradingFixture(t *testing.T) (GradingService, *stubGradeRepo, *model.Assignment) {
	t.Helper()
	studentRepo := &stubStudentRepo{students: map[string]*model.Student{
		"11111": {NIM: "11111", Name: "Siti Rahma"},
		"22222": {NIM: "22222", Name: "Andi Wijaya"},
	}}

	assignmentRepo := newStubAssignmentRepo()
	assignment := &model.Assignment{
		ID:         uuid.New().String(),
		StudentNIM: "11111",
		Dataset:    *testDataset(t),
	}
	if err := assignment.SetScenario(testScenario()); err != nil {
		t.Fatalf("set scenario: %v", err)
	}
	assignmentRepo.byNIM["11111"] = assignment

	submissionRepo := &stubSubmissionRepo{}
	submissionRepo.Create(&model.Submission{
		AssignmentID:   assignment.ID,
		LinkURL:        "https://colab.example.com/final",
		SubmissionType: model.SubmissionFinal,
	})

	gradeRepo := newStubGradeRepo()
	feedback := "Good handling of the null arrival times."
	gradeRepo.Upsert(&model.Grade{AssignmentID: assignment.ID, Score: 85, Feedback: &feedback})

	svc := NewGradingService(studentRepo, assignmentRepo, submissionRepo, gradeRepo)
	return svc, gradeRepo, assignment
}

func TestListStudentsEnrichment(t *testing.T) {
	svc, _, assignment := newGradingFixture(t)

	entries, total, page, limit, err := svc.ListStudents(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || page != 1 || limit != 20 {
		t.Errorf("total/page/limit = %d/%d/%d, want 2/1/20", total, page, limit)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	graded := entries[0]
	if graded.Student.NIM != "11111" || graded.Assignment == nil {
		t.Fatalf("first entry not enriched: %+v", graded)
	}
	if graded.Assignment.ID != assignment.ID || graded.Assignment.Scenario.StakeholderName != "Budi Santoso" {
		t.Errorf("unexpected assignment view: %+v", graded.Assignment)
	}
	if len(graded.Submissions) != 1 || graded.Grade == nil || graded.Grade.Score != 85 {
		t.Errorf("submissions/grade not attached: %+v", graded)
	}

	// Students without an assignment still appear, just unenriched.
	bare := entries[1]
	if bare.Student.NIM != "22222" || bare.Assignment != nil || bare.Grade != nil || len(bare.Submissions) != 0 {
		t.Errorf("unexpected entry for unprovisioned student: %+v", bare)
	}
}

func TestListStudentsExcludesPersonaInstruction(t *testing.T) {
	svc, _, _ := newGradingFixture(t)

	entries, _, _, _, err := svc.ListStudents(context.Background(), 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	if strings.Contains(body, "persona") || strings.Contains(body, "RS Harapan") {
		t.Errorf("persona instruction leaked into the grading list: %s", body)
	}
}

func TestListStudentsClampsPaging(t *testing.T) {
	svc, _, _ := newGradingFixture(t)

	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"zero page", 0, 20, 1, 20},
		{"negative page", -3, 20, 1, 20},
		{"zero limit", 1, 0, 1, defaultPageLimit},
		{"oversized limit", 1, 1000, 1, maxPageLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, page, limit, err := svc.ListStudents(context.Background(), tt.page, tt.limit)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("page/limit = %d/%d, want %d/%d", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestSearchStudents(t *testing.T) {
	svc, _, _ := newGradingFixture(t)

	entries, err := svc.SearchStudents(context.Background(), "siti")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(entries) != 1 || entries[0].Student.NIM != "11111" {
		t.Fatalf("unexpected matches: %+v", entries)
	}
	if entries[0].Assignment == nil {
		t.Error("search results are not enriched")
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "persona") {
		t.Error("persona instruction leaked into search results")
	}
}

func TestUpsertGrade(t *testing.T) {
	svc, gradeRepo, assignment := newGradingFixture(t)

	feedback := "Revised after final submission."
	grade, err := svc.UpsertGrade(context.Background(), assignment.ID, 92, &feedback)
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if grade.Score != 92 {
		t.Errorf("score = %d, want 92", grade.Score)
	}
	if stored := gradeRepo.byAssignment[assignment.ID]; stored.Score != 92 || stored.Feedback == nil || *stored.Feedback != feedback {
		t.Errorf("grade not overwritten in place: %+v", stored)
	}
}

func TestUpsertGradeUnknownAssignment(t *testing.T) {
	svc, _, _ := newGradingFixture(t)
	if _, err := svc.UpsertGrade(context.Background(), uuid.New().String(), 90, nil); !errors.Is(err, apperror.ErrAssignmentNotFound) {
		t.Fatalf("err = %v, want ErrAssignmentNotFound", err)
	}
}
