// File: handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorhive/middleware"
	"tutorhive/services/user"
	"tutorhive/utils"
)

// Register creates an account and logs it in.
// POST /api/auth/register
func (h *HandlerBundle) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid registration request", err.Error())
		return
	}

	u, token, err := h.Users.Register(c.Request.Context(), req)
	if errors.Is(err, user.ErrUserExists) {
		utils.JSONError(c, http.StatusConflict, "Username or email already in use", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
}

// Login authenticates by username (or email) and password.
// POST /api/auth/login
func (h *HandlerBundle) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login request", err.Error())
		return
	}

	u, token, err := h.Users.Authenticate(c.Request.Context(), req)
	if errors.Is(err, user.ErrInvalidCredentials) {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid username or password", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// Me returns the authenticated user's profile.
// GET /api/me
func (h *HandlerBundle) Me(c *gin.Context) {
	h.profile(c, middleware.UserID(c))
}

// PublicProfile returns any user's public profile.
// GET /api/users/:id
func (h *HandlerBundle) PublicProfile(c *gin.Context) {
	h.profile(c, c.Param("id"))
}

func (h *HandlerBundle) profile(c *gin.Context, userID string) {
	p, err := h.Users.GetProfile(c.Request.Context(), userID)
	if errors.Is(err, user.ErrUserNotFound) {
		utils.JSONError(c, http.StatusNotFound, "User not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load profile", "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfile applies partial changes to the authenticated account.
// PATCH /api/me
func (h *HandlerBundle) UpdateProfile(c *gin.Context) {
	var req user.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile update", err.Error())
		return
	}

	u, err := h.Users.UpdateProfile(c.Request.Context(), middleware.UserID(c), req)
	if errors.Is(err, user.ErrUserExists) {
		utils.JSONError(c, http.StatusConflict, "Username or email already in use", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Profile update failed", "")
		return
	}
	c.JSON(http.StatusOK, u)
}
