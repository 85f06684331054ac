// File: handlers/scheduling.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorhive/middleware"
	"tutorhive/services/scheduling"
	"tutorhive/utils"
)

// respondSchedulingError maps scheduling outcomes onto HTTP statuses:
// missing resources 404, ownership failures 403, slot conflicts 409, and
// field validation 400.
func respondSchedulingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scheduling.ErrListingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
	case errors.Is(err, scheduling.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.Is(err, scheduling.ErrWindowNotFound):
		utils.JSONError(c, http.StatusNotFound, "Availability window not found", "")
	case errors.Is(err, scheduling.ErrNotAllowed):
		utils.JSONError(c, http.StatusForbidden, "You are not allowed to do that", "")
	default:
		if ce, ok := scheduling.AsConflict(err); ok {
			utils.JSONError(c, http.StatusConflict, ce.Reason, "")
			return
		}
		if ie, ok := scheduling.AsInvalidInput(err); ok {
			utils.JSONError(c, http.StatusBadRequest, "Invalid "+ie.Field, ie.Reason)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "")
	}
}

// GetListingSlots returns the slot grid for a listing's provider on a date.
// GET /api/listings/:id/slots?date=YYYY-MM-DD
func (h *HandlerBundle) GetListingSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", "the date query parameter is required")
		return
	}

	slots, err := h.Scheduler.ComputeSlotsForListing(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// CreateBooking admits a booking for the authenticated student.
// POST /api/bookings
func (h *HandlerBundle) CreateBooking(c *gin.Context) {
	var req scheduling.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}
	req.StudentID = middleware.UserID(c)

	booking, err := h.Scheduler.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListMyBookings returns the authenticated user's bookings as a student.
func (h *HandlerBundle) ListMyBookings(c *gin.Context) {
	bookings, err := h.Scheduler.ListStudentBookings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListProviderBookings returns the authenticated user's bookings as a provider.
func (h *HandlerBundle) ListProviderBookings(c *gin.Context) {
	bookings, err := h.Scheduler.ListProviderBookings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ConfirmBooking lets the provider confirm a pending booking.
// POST /api/bookings/:id/confirm
func (h *HandlerBundle) ConfirmBooking(c *gin.Context) {
	booking, err := h.Scheduler.ConfirmBooking(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking cancels a booking, freeing its slot.
// POST /api/bookings/:id/cancel
func (h *HandlerBundle) CancelBooking(c *gin.Context) {
	if err := h.Scheduler.CancelBooking(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// CompleteBooking records the caller's side of session completion.
// POST /api/bookings/:id/complete
func (h *HandlerBundle) CompleteBooking(c *gin.Context) {
	booking, err := h.Scheduler.MarkComplete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// AddAvailability registers a weekly open-hours window for the provider.
// POST /api/availability
func (h *HandlerBundle) AddAvailability(c *gin.Context) {
	var req scheduling.CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability window", err.Error())
		return
	}

	window, err := h.Scheduler.AddWindow(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, window)
}

// ListAvailability returns all of the provider's windows.
func (h *HandlerBundle) ListAvailability(c *gin.Context) {
	windows, err := h.Scheduler.ListWindows(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

// DeactivateAvailability soft-disables a window.
// POST /api/availability/:id/deactivate
func (h *HandlerBundle) DeactivateAvailability(c *gin.Context) {
	if err := h.Scheduler.DeactivateWindow(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// DeleteAvailability removes a window permanently.
// DELETE /api/availability/:id
func (h *HandlerBundle) DeleteAvailability(c *gin.Context) {
	if err := h.Scheduler.DeleteWindow(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondSchedulingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
