package repository

import (
	"github.com/adnanfr/Binturong/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.Assignment) error
	FindByStudentNIM(nim string) (*model.Assignment, error)
	FindByID(id string) (*model.Assignment, error)
	DeleteByStudentNIM(nim string) error
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) FindByStudentNIM(nim string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.Preload("Dataset").Where("student_nim = ?", nim).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindByID(id string) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.db.Preload("Dataset").Where("id = ?", id).First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) DeleteByStudentNIM(nim string) error {
	// Children go with it through the OnDelete:CASCADE constraints.
	return r.db.Where("student_nim = ?", nim).Delete(&model.Assignment{}).Error
}
