package service

import (
	"errors"
	"fmt"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/adnanfr/Binturong/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type DatasetService interface {
	List() ([]dto.DatasetDTO, error)
	Create(req dto.DatasetCreateDTO, url string) (*dto.DatasetDTO, error)
	Delete(id string) error
}

type datasetService struct {
	datasetRepo repository.DatasetRepository
}

func NewDatasetService(datasetRepo repository.DatasetRepository) DatasetService {
	return &datasetService{datasetRepo: datasetRepo}
}

func (s *datasetService) List() ([]dto.DatasetDTO, error) {
	datasets, err := s.datasetRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	out := make([]dto.DatasetDTO, 0, len(datasets))
	for i := range datasets {
		out = append(out, toDatasetDTO(&datasets[i]))
	}
	return out, nil
}

// Create stores a dataset. The url parameter is the already-validated,
// normalized link; the rest of the metadata is taken as the lecturer wrote
// it since the Architect prompt quotes it verbatim.
func (s *datasetService) Create(req dto.DatasetCreateDTO, url string) (*dto.DatasetDTO, error) {
	dataset := &model.Dataset{
		Name:             req.Name,
		URL:              url,
		MetadataSummary:  req.MetadataSummary,
		SampleData:       req.SampleData,
		DataQualityNotes: req.DataQualityNotes,
	}
	if err := dataset.SetColumns(req.ColumnsList); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	if err := s.datasetRepo.Create(dataset); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create dataset")
		return nil, fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}

	d := toDatasetDTO(dataset)
	return &d, nil
}

func (s *datasetService) Delete(id string) error {
	if err := s.datasetRepo.Delete(id); err != nil {
		// TranslateError surfaces FK violations as gorm.ErrForeignKeyViolated:
		// an assignment still points at this dataset.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperror.ErrDatasetInUse
		}
		log.Error().Err(err).Str("dataset_id", id).Msg("Failed to delete dataset")
		return fmt.Errorf("%w: %v", apperror.ErrStorage, err)
	}
	return nil
}
