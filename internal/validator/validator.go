// Package validator holds the single-field checks that run before any
// service call. Each function returns the normalized value or a
// *apperror.ValidationError; none of them touch the database.
package validator

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/adnanfr/Binturong/internal/apperror"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NIM validates a student identifier and returns it trimmed.
func NIM(nim string) (string, error) {
	trimmed := strings.TrimSpace(nim)
	if trimmed == "" {
		return "", apperror.NewValidation("nim", "NIM cannot be empty")
	}
	if len(nim) > 50 {
		return "", apperror.NewValidation("nim", "NIM too long (max 50 characters)")
	}
	return trimmed, nil
}

// Email validates an email address and returns it trimmed and lower-cased.
func Email(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", apperror.NewValidation("email", "Email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return "", apperror.NewValidation("email", "Invalid email format")
	}
	return strings.ToLower(strings.TrimSpace(email)), nil
}

// URL validates a link and returns it trimmed. Only http and https are
// accepted; anything else is rejected rather than guessed at.
func URL(url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", apperror.NewValidation("url", "URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", apperror.NewValidation("url", "URL must start with http:// or https://")
	}
	return strings.TrimSpace(url), nil
}

// Password validates a plain-text password without normalizing it.
func Password(password string) (string, error) {
	if len(password) < 8 {
		return "", apperror.NewValidation("password", "Password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return "", apperror.NewValidation("password", "Password too long (max 128 characters)")
	}
	return password, nil
}

// Score validates a grade score. It takes a json.Number so that 85.5
// arriving in a JSON body is rejected instead of silently truncated.
func Score(score json.Number) (int, error) {
	n, err := score.Int64()
	if err != nil {
		return 0, apperror.NewValidation("score", "Score must be an integer")
	}
	if n < 0 || n > 100 {
		return 0, apperror.NewValidation("score", "Score must be between 0 and 100")
	}
	return int(n), nil
}
