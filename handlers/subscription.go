// File: handlers/subscription.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorhive/middleware"
	"tutorhive/services/subscription"
	"tutorhive/utils"
)

// ListPlans returns every subscription tier.
// GET /api/plans
func (h *HandlerBundle) ListPlans(c *gin.Context) {
	plans, err := h.Subscriptions.ListPlans(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load plans", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// CurrentPlan returns the authenticated user's plan.
// GET /api/me/plan
func (h *HandlerBundle) CurrentPlan(c *gin.Context) {
	current, err := h.Subscriptions.Current(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load subscription", "")
		return
	}
	c.JSON(http.StatusOK, current)
}

// ChangePlan switches the authenticated user's tier.
// POST /api/plans/:id/subscribe
func (h *HandlerBundle) ChangePlan(c *gin.Context) {
	plan, err := h.Subscriptions.ChangePlan(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if errors.Is(err, subscription.ErrPlanNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Plan not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to change plan", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
