package apperror

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes every handler knows how to map.
// Services return these (usually wrapped with fmt.Errorf and %w) and
// controllers translate them into HTTP statuses; nothing else escapes to
// the response body.
var (
	// ErrInvalidCredentials covers both an unknown lecturer email and a
	// wrong password, so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrStudentNotFound    = errors.New("student not found. Please contact your lecturer")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrDatasetNotFound    = errors.New("dataset not found")

	ErrNoDatasets = errors.New("no datasets available. Please ask your lecturer to add datasets")

	// ErrDatasetInUse means at least one assignment still references the
	// dataset; deleting would break those assignments' foreign keys.
	ErrDatasetInUse = errors.New("dataset is in use by existing assignments")

	// ErrTokenExpired and ErrTokenInvalid are both 401s but clients show
	// different messages for them.
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")

	ErrForbidden = errors.New("unauthorized")

	ErrConflict = errors.New("resource already exists")

	// ErrGeneration marks a failed or unparseable language-model call.
	ErrGeneration = errors.New("scenario generation failed")

	// ErrGenerationTimeout is kept distinct from ErrGeneration so slow
	// model calls can be told apart from broken ones in logs.
	ErrGenerationTimeout = errors.New("scenario generation timed out")

	ErrStorage = errors.New("datastore operation failed")
)

// ValidationError carries a per-field, human-readable message for a 400
// response. Field is the JSON field name the client sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidation builds a ValidationError for a field.
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidation unwraps err into a *ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
