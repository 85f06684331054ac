// File: handlers/job.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tutorhive/middleware"
	"tutorhive/models"
	"tutorhive/services/job"
	"tutorhive/utils"
)

func respondJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, job.ErrJobNotFound):
		utils.JSONError(c, http.StatusNotFound, "Job not found", "")
	case errors.Is(err, job.ErrProposalNotFound):
		utils.JSONError(c, http.StatusNotFound, "Proposal not found", "")
	case errors.Is(err, job.ErrNotAllowed):
		utils.JSONError(c, http.StatusForbidden, "You are not allowed to do that", "")
	case errors.Is(err, job.ErrOwnJob):
		utils.JSONError(c, http.StatusConflict, "You cannot submit an offer on your own job", "")
	case errors.Is(err, job.ErrJobClosed):
		utils.JSONError(c, http.StatusConflict, "Job is no longer open", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong", "")
	}
}

// BrowseJobs returns a filtered page of jobs.
// GET /api/jobs?status=&q=&page=&pageSize=
func (h *HandlerBundle) BrowseJobs(c *gin.Context) {
	filter := models.JobFilter{
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.Query("pageSize"))

	jobs, total, err := h.Jobs.Browse(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load jobs", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": total, "page": filter.Page})
}

// GetJob returns a job; proposals appear only for the owner.
// GET /api/jobs/:id
func (h *HandlerBundle) GetJob(c *gin.Context) {
	detail, err := h.Jobs.GetDetail(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// PostJob publishes a freelance task.
// POST /api/jobs
func (h *HandlerBundle) PostJob(c *gin.Context) {
	var req job.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid job", err.Error())
		return
	}

	j, err := h.Jobs.Post(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

// SubmitOffer upserts the caller's proposal on an open job.
// POST /api/jobs/:id/offers
func (h *HandlerBundle) SubmitOffer(c *gin.Context) {
	var req job.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid offer", err.Error())
		return
	}

	p, err := h.Jobs.SubmitOffer(c.Request.Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// AcceptOffer marks one proposal accepted and moves the job to in_progress.
// POST /api/jobs/:id/offers/:proposalId/accept
func (h *HandlerBundle) AcceptOffer(c *gin.Context) {
	if err := h.Jobs.AcceptOffer(c.Request.Context(), middleware.UserID(c), c.Param("id"), c.Param("proposalId")); err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

// CloseJob marks the owner's job finished.
// POST /api/jobs/:id/close
func (h *HandlerBundle) CloseJob(c *gin.Context) {
	if err := h.Jobs.Close(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

// MyJobs returns jobs posted by the authenticated user.
// GET /api/me/jobs
func (h *HandlerBundle) MyJobs(c *gin.Context) {
	jobs, err := h.Jobs.MyJobs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// MyOffers returns proposals submitted by the authenticated user.
// GET /api/me/offers
func (h *HandlerBundle) MyOffers(c *gin.Context) {
	offers, err := h.Jobs.MyOffers(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers})
}

// DeleteJob removes the owner's job.
// DELETE /api/jobs/:id
func (h *HandlerBundle) DeleteJob(c *gin.Context) {
	if err := h.Jobs.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
