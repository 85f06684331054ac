// File: middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	userRepo "tutorhive/database/repository/user"
	"tutorhive/utils"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	ContextUserIDKey    = "userID"
	ContextRoleLevelKey = "roleLevel"
)

// AuthMiddleware validates the Bearer token, loads the account, and stashes
// the user ID and role level on the request context. Requests without a valid
// token are rejected.
func AuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or malformed Authorization header", "")
			c.Abort()
			return
		}

		userID, err := utils.ExtractIDFromToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid or expired token", "")
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		u, err := users.GetByID(ctx, userID)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Account no longer exists", "")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, u.ID)
		c.Set(ContextRoleLevelKey, u.RoleLevel)
		c.Next()
	}
}

// OptionalAuth resolves the user when a valid token is present but lets
// anonymous requests through. Used on public routes whose response is richer
// for the resource owner.
func OptionalAuth(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		userID, err := utils.ExtractIDFromToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		if u, err := users.GetByID(ctx, userID); err == nil {
			c.Set(ContextUserIDKey, u.ID)
			c.Set(ContextRoleLevelKey, u.RoleLevel)
		}
		c.Next()
	}
}

// UserID returns the authenticated user's ID from the request context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}
