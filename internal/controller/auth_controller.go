package controller

import (
	"errors"
	"net/http"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/adnanfr/Binturong/internal/service"
	"github.com/adnanfr/Binturong/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// StudentLogin godoc
// @Summary Student login with NIM only
// @Description Authenticates a student by NIM and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.StudentLoginDTO true "Student NIM"
// @Success 200 {object} dto.StudentLoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid NIM"
// @Failure 401 {object} dto.ErrorResponse "Unknown NIM"
// @Router /auth/student/login [post]
func (ctl *AuthController) StudentLogin(c *gin.Context) {
	var req dto.StudentLoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	nim, err := validator.NIM(req.NIM)
	if err != nil {
		respondError(c, err)
		return
	}

	student, token, err := ctl.authService.AuthenticateStudent(nim)
	if err != nil {
		// An unknown NIM at login is a credential failure, not a missing
		// resource.
		if errors.Is(err, apperror.ErrStudentNotFound) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudentLoginResponse{Success: true, Student: *student, Token: token})
}

// LecturerLogin godoc
// @Summary Lecturer login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LecturerLoginDTO true "Lecturer credentials"
// @Success 200 {object} dto.LecturerLoginResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid email format"
// @Failure 401 {object} dto.ErrorResponse "Bad credentials"
// @Router /auth/lecturer/login [post]
func (ctl *AuthController) LecturerLogin(c *gin.Context) {
	var req dto.LecturerLoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	email, err := validator.Email(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	user, token, err := ctl.authService.AuthenticateLecturer(email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LecturerLoginResponse{Success: true, User: *user, Token: token})
}

// LecturerRegister godoc
// @Summary Register a new lecturer account
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.LecturerRegisterDTO true "Email and password"
// @Success 201 {object} dto.LecturerRegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/lecturer/register [post]
func (ctl *AuthController) LecturerRegister(c *gin.Context) {
	var req dto.LecturerRegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	email, err := validator.Email(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	password, err := validator.Password(req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := ctl.authService.RegisterLecturer(email, password)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Info().Str("email", email).Msg("Lecturer registered")
	c.JSON(http.StatusCreated, dto.LecturerRegisterResponse{Success: true, User: *user})
}

// UploadRoster godoc
// @Summary Upload a student roster
// @Description Bulk-upserts students by NIM. Lecturer only.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roster body dto.RosterUploadDTO true "Students to upsert"
// @Success 201 {object} dto.RosterUploadResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid roster entry"
// @Failure 403 {object} dto.ErrorResponse "Not a lecturer"
// @Router /auth/students/upload-roster [post]
func (ctl *AuthController) UploadRoster(c *gin.Context) {
	var req dto.RosterUploadDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	count, err := ctl.authService.UploadRoster(req.Students)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RosterUploadResponse{
		Success: true,
		Count:   count,
		Message: "Roster uploaded successfully",
	})
}
