package service

import (
	"errors"
	"testing"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestDatasetCreateAndList(t *testing.T) {
	repo := &stubDatasetRepo{}
	svc := NewDatasetService(repo)

	created, err := svc.Create(dto.DatasetCreateDTO{
		Name:        "ER Wait Times 2024",
		URL:         "https://example.com/er.csv",
		ColumnsList: []string{"patient_id", "arrival_time"},
	}, "https://example.com/er.csv")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(created.ColumnsList) != 2 {
		t.Errorf("columns not round-tripped: %+v", created.ColumnsList)
	}

	listed, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "ER Wait Times 2024" {
		t.Errorf("unexpected listing: %+v", listed)
	}
}

func TestDatasetDeleteInUse(t *testing.T) {
	repo := &stubDatasetRepo{deleteErr: gorm.ErrForeignKeyViolated}
	svc := NewDatasetService(repo)

	err := svc.Delete(uuid.New().String())
	if !errors.Is(err, apperror.ErrDatasetInUse) {
		t.Fatalf("err = %v, want ErrDatasetInUse", err)
	}
}

func TestDatasetDeleteStorageFailure(t *testing.T) {
	repo := &stubDatasetRepo{deleteErr: errors.New("connection reset")}
	svc := NewDatasetService(repo)

	if err := svc.Delete(uuid.New().String()); !errors.Is(err, apperror.ErrStorage) {
		t.Fatalf("err = %v, want ErrStorage", err)
	}
}
