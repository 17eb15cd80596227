package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"k9hope_backend/internal/auth"
	"k9hope_backend/internal/logger"
	"k9hope_backend/internal/models"
	"k9hope_backend/pkg/apperrors"
)

const (
	// Context keys set after successful authentication.
	ContextUserIDKey = "userID"
	ContextRoleKey   = "userRole"
)

// AuthMiddleware verifies the Bearer token and stores the caller's
// identity on the gin context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header is missing")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Authorization header must be a Bearer token")
			return
		}

		claims, err := tokens.ParseAccessToken(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(401, apperrors.ErrorResponse{
					Error: apperrors.New(apperrors.CodeTokenExpired, "auth", "Token expired", 401),
				})
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set.
// Must run after AuthMiddleware.
func RequireRoles(allowed ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextRoleKey)
		if !exists {
			abortUnauthorized(c, "User not authenticated")
			return
		}
		role, ok := roleVal.(models.UserRole)
		if !ok || !auth.RoleAllowed(role, allowed...) {
			c.AbortWithStatusJSON(403, apperrors.ErrorResponse{
				Error: apperrors.NewForbiddenError("Insufficient permissions"),
			})
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(401, apperrors.ErrorResponse{
		Error: apperrors.NewUnauthorizedError(message),
	})
}
