package controller

import (
	"fmt"
	"net/http"

	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/middleware"
	"github.com/adnanfr/Binturong/internal/service"
	"github.com/adnanfr/Binturong/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AssignmentController struct {
	assignmentService service.AssignmentService
}

func NewAssignmentController(assignmentService service.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// GetMyAssignment godoc
// @Summary Fetch (or lazily create) the caller's assignment
// @Description First access triggers just-in-time scenario generation; later accesses return the stored assignment unchanged. The scenario in the response never includes the persona instruction.
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse "No datasets available"
// @Failure 404 {object} dto.ErrorResponse "Student not rostered"
// @Failure 500 {object} dto.ErrorResponse "Generation failed"
// @Router /assignments/me [get]
func (ctl *AssignmentController) GetMyAssignment(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)

	assignment, err := ctl.assignmentService.GetOrCreate(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AssignmentResponse{Success: true, Assignment: *assignment})
}

// Regenerate godoc
// @Summary Delete a student's assignment so a fresh one is generated
// @Description Lecturer only. The delete cascades to chat messages, submissions and grade; the student receives a new assignment on next access.
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param target body dto.RegenerateAssignmentDTO true "Student NIM"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid NIM"
// @Router /assignments/regenerate [post]
func (ctl *AssignmentController) Regenerate(c *gin.Context) {
	var req dto.RegenerateAssignmentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	nim, err := validator.NIM(req.StudentNIM)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctl.assignmentService.Delete(c.Request.Context(), nim); err != nil {
		respondError(c, err)
		return
	}

	log.Info().Str("nim", nim).Msg("Assignment regeneration requested")
	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Assignment for %s has been deleted. A new one will be generated on next login.", nim),
	})
}
