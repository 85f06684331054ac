// File: handlers/testimonial.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorhive/middleware"
	"tutorhive/models"
	"tutorhive/services/testimonial"
	"tutorhive/utils"
)

// SubmitTestimonial creates or updates the caller's testimonial.
// POST /api/testimonials
func (h *HandlerBundle) SubmitTestimonial(c *gin.Context) {
	var req testimonial.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid testimonial", err.Error())
		return
	}

	t, err := h.Testimonials.Submit(c.Request.Context(), middleware.UserID(c), req)
	if errors.Is(err, testimonial.ErrInvalidRating) {
		utils.JSONError(c, http.StatusBadRequest, "Rating must be between 1 and 5", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save testimonial", "")
		return
	}
	c.JSON(http.StatusCreated, t)
}

// MyTestimonial returns the caller's testimonial, if any.
// GET /api/me/testimonial
func (h *HandlerBundle) MyTestimonial(c *gin.Context) {
	t, err := h.Testimonials.Mine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load testimonial", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonial": t})
}

// ListTestimonials returns approved testimonials for the about page.
// GET /api/testimonials
func (h *HandlerBundle) ListTestimonials(c *gin.Context) {
	ts, err := h.Testimonials.ListApproved(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load testimonials", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"testimonials": ts})
}

// PlatformStats returns the home page headline counts.
// GET /api/stats
func (h *HandlerBundle) PlatformStats(c *gin.Context) {
	stats, err := h.Testimonials.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load stats", "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Contact accepts a contact form submission.
// POST /api/contact
func (h *HandlerBundle) Contact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact message", err.Error())
		return
	}
	if err := h.Testimonials.ProcessContact(c.Request.Context(), msg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to submit message", "")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "received"})
}
