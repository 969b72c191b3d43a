package controller

import (
	"errors"
	"net/http"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError is the single place service failures become HTTP responses.
// Unknown errors collapse to a generic 500; their detail is logged, never
// sent to the client.
func respondError(c *gin.Context, err error) {
	if ve, ok := apperror.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid input", Details: []string{ve.Error()}})
		return
	}

	switch {
	case errors.Is(err, apperror.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: apperror.ErrInvalidCredentials.Error()})
	case errors.Is(err, apperror.ErrTokenExpired), errors.Is(err, apperror.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperror.ErrStudentNotFound),
		errors.Is(err, apperror.ErrAssignmentNotFound),
		errors.Is(err, apperror.ErrDatasetNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrNoDatasets):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperror.ErrNoDatasets.Error()})
	case errors.Is(err, apperror.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Resource already exists"})
	case errors.Is(err, apperror.ErrDatasetInUse):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: apperror.ErrDatasetInUse.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
}
