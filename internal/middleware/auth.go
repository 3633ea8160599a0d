package middleware

import (
	"media-service/internal/models"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// RequireAuth validates the bearer token and stashes the user id and role in
// the gin context for downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.ClaimsFromRequest(c)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid token")
			c.Abort()
			return
		}
		if claims == nil || claims.UserID == "" {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireEditor gates CMS mutations to editors and admins.
func RequireEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := models.UserProfile{Role: c.GetString(ContextRole)}
		if !profile.CanEdit() {
			utils.ForbiddenResponse(c, "Editor access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin gates user management and site settings.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != models.RoleAdmin {
			utils.ForbiddenResponse(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
