package controller

import (
	"net/http"
	"strconv"

	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/service"
	"github.com/adnanfr/Binturong/internal/validator"
	"github.com/gin-gonic/gin"
)

type GradingController struct {
	gradingService service.GradingService
}

func NewGradingController(gradingService service.GradingService) *GradingController {
	return &GradingController{gradingService: gradingService}
}

// ListStudents godoc
// @Summary Paginated grading roster
// @Description Each entry carries the student plus their assignment, submissions and grade where present.
// @Tags Grading
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GradingListResponse
// @Router /grading/students [get]
func (ctl *GradingController) ListStudents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	entries, total, page, limit, err := ctl.gradingService.ListStudents(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GradingListResponse{
		Success:  true,
		Students: entries,
		Page:     page,
		Limit:    limit,
		Total:    total,
	})
}

// SearchStudents godoc
// @Summary Search students by NIM or name substring
// @Tags Grading
// @Produce json
// @Security BearerAuth
// @Param query path string true "Substring to match (case-insensitive)"
// @Success 200 {object} dto.GradingSearchResponse
// @Router /grading/search/{query} [get]
func (ctl *GradingController) SearchStudents(c *gin.Context) {
	entries, err := ctl.gradingService.SearchStudents(c.Request.Context(), c.Param("query"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GradingSearchResponse{Success: true, Students: entries})
}

// UpsertGrade godoc
// @Summary Create or overwrite the grade for an assignment
// @Tags Grading
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param grade body dto.GradeUpsertDTO true "Assignment ID, score 0-100, optional feedback"
// @Success 200 {object} dto.GradeUpsertResponse
// @Failure 400 {object} dto.ErrorResponse "Score out of range or not an integer"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /grading/grade [post]
func (ctl *GradingController) UpsertGrade(c *gin.Context) {
	var req dto.GradeUpsertDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	score, err := validator.Score(req.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	grade, err := ctl.gradingService.UpsertGrade(c.Request.Context(), req.AssignmentID, score, req.Feedback)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GradeUpsertResponse{Success: true, Grade: *grade})
}
