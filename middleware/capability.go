// File: middleware/capability.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorhive/models"
	"tutorhive/utils"
)

// Capability names a role-gated action checked at the route boundary.
type Capability int

const (
	CapPostTutorListing Capability = iota
	CapTakeJobs
	CapPostMentorListing
)

// RequireCapability rejects requests whose account tier lacks the capability.
// It must run after AuthMiddleware. Services re-check capabilities themselves;
// this gate just fails cheap and early.
func RequireCapability(required Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextRoleLevelKey)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
			c.Abort()
			return
		}
		level, ok := role.(models.Role)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Authentication required", "")
			c.Abort()
			return
		}

		allowed := false
		switch required {
		case CapPostTutorListing:
			allowed = level.CanPostTutorListing()
		case CapTakeJobs:
			allowed = level.CanTakeJobs()
		case CapPostMentorListing:
			allowed = level.CanPostMentorListing()
		}
		if !allowed {
			utils.JSONError(c, http.StatusForbidden, "Your current plan does not allow this action", "current plan: "+level.String())
			c.Abort()
			return
		}
		c.Next()
	}
}
