package middleware

import (
	"net/http"
	"strings"

	"github.com/adnanfr/Binturong/internal/auth"
	"github.com/adnanfr/Binturong/internal/dto"
	"github.com/gin-gonic/gin"
)

// claimsKey is where RequireAuth stores the verified claims in the gin
// context for handlers to read back.
const claimsKey = "auth_claims"

// RequireAuth verifies the bearer token and, when roles are given, that the
// token's role is one of them. A missing/expired/invalid token is 401; a
// valid token with the wrong role is 403.
func RequireAuth(secret string, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing or invalid authorization header"})
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if claims.UserType == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Unauthorized"})
				return
			}
		}

		c.Set(claimsKey, *claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims RequireAuth stored. It must only
// be called from handlers behind RequireAuth.
func ClaimsFrom(c *gin.Context) auth.Claims {
	claims, _ := c.Get(claimsKey)
	typed, _ := claims.(auth.Claims)
	return typed
}
