package repository

import (
	"github.com/adnanfr/Binturong/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GradeRepository interface {
	Upsert(grade *model.Grade) error
	FindByAssignmentID(assignmentID string) (*model.Grade, error)
}

type gradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) Upsert(grade *model.Grade) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "assignment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "feedback", "updated_at"}),
	}).Create(grade).Error
}

func (r *gradeRepository) FindByAssignmentID(assignmentID string) (*model.Grade, error) {
	var grade model.Grade
	err := r.db.Where("assignment_id = ?", assignmentID).First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}
