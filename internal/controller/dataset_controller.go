package controller

import (
	"net/http"

	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/service"
	"github.com/adnanfr/Binturong/internal/validator"
	"github.com/gin-gonic/gin"
)

type DatasetController struct {
	datasetService service.DatasetService
}

func NewDatasetController(datasetService service.DatasetService) *DatasetController {
	return &DatasetController{datasetService: datasetService}
}

// List godoc
// @Summary List all datasets
// @Tags Datasets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DatasetListResponse
// @Failure 403 {object} dto.ErrorResponse "Not a lecturer"
// @Router /datasets [get]
func (ctl *DatasetController) List(c *gin.Context) {
	datasets, err := ctl.datasetService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DatasetListResponse{Success: true, Datasets: datasets})
}

// Create godoc
// @Summary Create a dataset with its Architect metadata
// @Description Besides name and URL, the lecturer supplies the metadata the Architect stage quotes: summary, column names, sample rows, data-quality notes.
// @Tags Datasets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param dataset body dto.DatasetCreateDTO true "Dataset definition"
// @Success 201 {object} dto.DatasetCreateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid URL"
// @Router /datasets [post]
func (ctl *DatasetController) Create(c *gin.Context) {
	var req dto.DatasetCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	url, err := validator.URL(req.URL)
	if err != nil {
		respondError(c, err)
		return
	}

	dataset, err := ctl.datasetService.Create(req, url)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DatasetCreateResponse{Success: true, Dataset: *dataset})
}

// Delete godoc
// @Summary Delete a dataset
// @Tags Datasets
// @Produce json
// @Security BearerAuth
// @Param dataset_id path string true "Dataset ID"
// @Success 200 {object} dto.MessageResponse
// @Router /datasets/{dataset_id} [delete]
func (ctl *DatasetController) Delete(c *gin.Context) {
	if err := ctl.datasetService.Delete(c.Param("dataset_id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Dataset deleted successfully"})
}
