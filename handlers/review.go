// File: handlers/review.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorhive/middleware"
	"tutorhive/services/review"
	"tutorhive/utils"
)

// SubmitReview records a review of the other party in a completed engagement.
// POST /api/reviews
func (h *HandlerBundle) SubmitReview(c *gin.Context) {
	var req review.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review", err.Error())
		return
	}

	rv, err := h.Reviews.Submit(c.Request.Context(), middleware.UserID(c), req)
	switch {
	case errors.Is(err, review.ErrInvalidRating), errors.Is(err, review.ErrMissingTarget):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, review.ErrNotParticipant):
		utils.JSONError(c, http.StatusForbidden, "You did not take part in this engagement", "")
	case errors.Is(err, review.ErrNotCompleted), errors.Is(err, review.ErrAlreadyReviewed):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save review", "")
	default:
		c.JSON(http.StatusCreated, rv)
	}
}

// UserReviews returns reviews received by a user.
// GET /api/users/:id/reviews
func (h *HandlerBundle) UserReviews(c *gin.Context) {
	reviews, err := h.Reviews.Received(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load reviews", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// MyGivenReviews returns reviews the caller has written.
// GET /api/me/reviews
func (h *HandlerBundle) MyGivenReviews(c *gin.Context) {
	reviews, err := h.Reviews.Given(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load reviews", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
