package repository

import (
	"github.com/adnanfr/Binturong/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudentRepository interface {
	FindByNIM(nim string) (*model.Student, error)
	FindPage(offset, limit int) ([]model.Student, int64, error)
	Search(query string) ([]model.Student, error)
	UpsertMany(students []model.Student) (int, error)
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) FindByNIM(nim string) (*model.Student, error) {
	var student model.Student
	err := r.db.Where("nim = ?", nim).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindPage(offset, limit int) ([]model.Student, int64, error) {
	var total int64
	if err := r.db.Model(&model.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var students []model.Student
	err := r.db.Order("nim ASC").Offset(offset).Limit(limit).Find(&students).Error
	return students, total, err
}

func (r *studentRepository) Search(query string) ([]model.Student, error) {
	var students []model.Student
	pattern := "%" + query + "%"
	err := r.db.
		Where("nim ILIKE ? OR name ILIKE ?", pattern, pattern).
		Order("nim ASC").
		Find(&students).Error
	return students, err
}

func (r *studentRepository) UpsertMany(students []model.Student) (int, error) {
	if len(students) == 0 {
		return 0, nil
	}
	// Roster uploads repeat across semesters; an existing NIM just gets its
	// name refreshed.
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nim"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&students).Error
	if err != nil {
		return 0, err
	}
	return len(students), nil
}
