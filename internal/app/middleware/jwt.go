package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NotMomex/my-store-crm/internal/domain/models"
	"github.com/NotMomex/my-store-crm/internal/domain/services"
	"github.com/NotMomex/my-store-crm/internal/error/code"
	"github.com/NotMomex/my-store-crm/internal/error/response"
)

// Context keys set by Authentication
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
	ContextRole     = "role"
)

// extractToken strips the "Bearer " prefix from the Authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authentication verifies the bearer token and stores its claims in the context
func Authentication(jwtService services.InterfaceJWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Authorization header is required", nil)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(extractToken(authHeader))
		if err != nil {
			response.FailWithMessage(c, code.ErrTokenInvalid, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole lets through users whose role ranks at or above min.
// It must run after Authentication.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := CurrentRole(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		if !role.AtLeast(min) {
			response.FailWithMessage(c, code.ErrForbidden, "Insufficient permissions: requires "+string(min)+" role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly admin
func AdminOnly() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin)
}

// AgentAndAbove agent or admin
func AgentAndAbove() gin.HandlerFunc {
	return RequireRole(models.RoleAgent)
}

// ViewerAndAbove any authenticated role
func ViewerAndAbove() gin.HandlerFunc {
	return RequireRole(models.RoleViewer)
}

// CurrentUserID returns the authenticated user's ID
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// CurrentUsername returns the authenticated user's name
func CurrentUsername(c *gin.Context) string {
	return c.GetString(ContextUsername)
}

// CurrentRole returns the authenticated user's role
func CurrentRole(c *gin.Context) (models.Role, bool) {
	v, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := v.(models.Role)
	return role, ok
}
