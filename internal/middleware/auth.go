package middleware

import (
	"strings"

	"landscaping_backend/internal/auth"
	"landscaping_backend/internal/models"
	"landscaping_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "userRole"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header must be a bearer token"))
			return
		}

		claims, err := auth.ParseToken(parts[1])
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allow list. It must
// run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRoleKey)
		if !exists {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}

		role, ok := value.(models.UserRole)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
	}
}
