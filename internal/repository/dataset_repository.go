package repository

import (
	"github.com/adnanfr/Binturong/internal/model"
	"gorm.io/gorm"
)

type DatasetRepository interface {
	Create(dataset *model.Dataset) error
	FindAll() ([]model.Dataset, error)
	FindByID(id string) (*model.Dataset, error)
	Delete(id string) error
}

type datasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) DatasetRepository {
	return &datasetRepository{db: db}
}

func (r *datasetRepository) Create(dataset *model.Dataset) error {
	return r.db.Create(dataset).Error
}

func (r *datasetRepository) FindAll() ([]model.Dataset, error) {
	var datasets []model.Dataset
	err := r.db.Order("created_at DESC").Find(&datasets).Error
	return datasets, err
}

func (r *datasetRepository) FindByID(id string) (*model.Dataset, error) {
	var dataset model.Dataset
	err := r.db.Where("id = ?", id).First(&dataset).Error
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}

func (r *datasetRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Dataset{}).Error
}
