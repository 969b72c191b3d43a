package auth

import (
	"errors"
	"time"

	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleLecturer = "lecturer"
	RoleStudent  = "student"
)

// TokenTTL is how long an issued token stays valid. There is no revocation
// list; a token dies only by expiring.
const TokenTTL = 24 * time.Hour

type Claims struct {
	UserID   string `json:"user_id"`
	UserType string `json:"user_type"`
	jwt.RegisteredClaims
}

// NewToken issues an HS256 token for a subject. UserID is the lecturer's
// email or the student's NIM, matching what the datastore keys them by.
func NewToken(secret, userID, userType string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry. Expired tokens are reported
// separately from malformed or tampered ones.
func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrTokenExpired
		}
		return nil, apperror.ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperror.ErrTokenInvalid
	}
	return claims, nil
}
