// File: handlers/listing.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tutorhive/middleware"
	"tutorhive/models"
	"tutorhive/services/listing"
	"tutorhive/utils"
)

// BrowseListings returns a filtered page of active listings.
// GET /api/listings?type=&q=&minPrice=&maxPrice=&page=&pageSize=
func (h *HandlerBundle) BrowseListings(c *gin.Context) {
	filter := models.ListingFilter{
		Type:  c.Query("type"),
		Query: c.Query("q"),
	}
	filter.MinPrice, _ = strconv.ParseFloat(c.Query("minPrice"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(c.Query("maxPrice"), 64)
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

	listings, total, err := h.Listings.Browse(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load listings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "total": total, "page": filter.Page})
}

// GetListing returns one listing with its provider's public info.
// GET /api/listings/:id
func (h *HandlerBundle) GetListing(c *gin.Context) {
	detail, err := h.Listings.GetDetail(c.Request.Context(), c.Param("id"))
	if errors.Is(err, listing.ErrListingNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load listing", "")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateListing publishes a new offering for the authenticated provider.
// POST /api/listings
func (h *HandlerBundle) CreateListing(c *gin.Context) {
	var req listing.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid listing", err.Error())
		return
	}

	l, err := h.Listings.Create(c.Request.Context(), middleware.UserID(c), req)
	switch {
	case errors.Is(err, listing.ErrNotAllowed):
		utils.JSONError(c, http.StatusForbidden, "Your current plan does not allow this listing type", "")
	case errors.Is(err, listing.ErrListingQuota):
		utils.JSONError(c, http.StatusForbidden, "Listing limit for your plan reached", "")
	case errors.Is(err, listing.ErrInvalidListing):
		utils.JSONError(c, http.StatusBadRequest, "Invalid listing", "")
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create listing", "")
	default:
		c.JSON(http.StatusCreated, l)
	}
}

// MyListings returns the authenticated provider's listings.
// GET /api/me/listings
func (h *HandlerBundle) MyListings(c *gin.Context) {
	listings, err := h.Listings.MyListings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load listings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}

// DeleteListing removes the provider's own listing.
// DELETE /api/listings/:id
func (h *HandlerBundle) DeleteListing(c *gin.Context) {
	err := h.Listings.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if errors.Is(err, listing.ErrListingNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Listing not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete listing", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
