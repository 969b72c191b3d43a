package controller

import (
	"net/http"

	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/middleware"
	"github.com/adnanfr/Binturong/internal/service"
	"github.com/adnanfr/Binturong/internal/validator"
	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// List godoc
// @Summary List submissions for an assignment
// @Description Newest first. Students can only list their own assignment's submissions.
// @Tags Submissions
// @Produce json
// @Security BearerAuth
// @Param assignment_id path string true "Assignment ID"
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 403 {object} dto.ErrorResponse "Not your assignment"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /submissions/{assignment_id} [get]
func (ctl *SubmissionController) List(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	submissions, err := ctl.submissionService.ListByAssignment(c.Request.Context(), c.Param("assignment_id"), claims)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionListResponse{Success: true, Submissions: submissions})
}

// Create godoc
// @Summary Submit a progress or final link
// @Tags Submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.SubmissionCreateDTO true "Submission"
// @Success 201 {object} dto.SubmissionCreateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid URL or type"
// @Failure 403 {object} dto.ErrorResponse "Not your assignment"
// @Router /submissions [post]
func (ctl *SubmissionController) Create(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	var req dto.SubmissionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	linkURL, err := validator.URL(req.LinkURL)
	if err != nil {
		respondError(c, err)
		return
	}

	submission, err := ctl.submissionService.Create(c.Request.Context(), claims.UserID, req.AssignmentID, linkURL, req.SubmissionType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmissionCreateResponse{Success: true, Submission: *submission})
}
