// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"slotify/models"
	"slotify/utils"
)

const (
	ContextUID  = "uid"
	ContextRole = "role"
	ContextName = "displayName"
)

// FirebaseAuthMiddleware verifies the identity provider's ID token and
// places uid and role into the context. When optional is true a missing or
// invalid token degrades the caller to guest instead of aborting.
func FirebaseAuthMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextRole, models.RoleGuest)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			utils.GetLogger().Debug("token verification failed", zap.Error(err))
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUID, token.UID)
		if claim, ok := token.Claims["role"].(string); ok {
			c.Set(ContextRole, models.ParseRole(claim))
		}
		if name, ok := token.Claims["name"].(string); ok {
			c.Set(ContextName, name)
		}
		c.Next()
	}
}

// RequireRole aborts requests whose resolved role is below min. Must run
// after FirebaseAuthMiddleware.
func RequireRole(min models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetRole(c).AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient privileges"})
			return
		}
		c.Next()
	}
}

// GetRole returns the caller's role from the context, defaulting to guest.
func GetRole(c *gin.Context) models.Role {
	if v, exists := c.Get(ContextRole); exists {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return models.RoleGuest
}

// GetUID returns the caller's uid from the context, or "".
func GetUID(c *gin.Context) string {
	if v, exists := c.Get(ContextUID); exists {
		if uid, ok := v.(string); ok {
			return uid
		}
	}
	return ""
}

// GetDisplayName returns the caller's display name from the context, or "".
func GetDisplayName(c *gin.Context) string {
	if v, exists := c.Get(ContextName); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
