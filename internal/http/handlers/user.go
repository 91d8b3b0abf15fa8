package handlers

import (
	"errors"
	"net/http"

	"okcoin_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
}

// CreateUser creates a user or returns the existing one for the username.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user data"})
		return
	}

	user := h.Game.CreateOrGetUser(req.Username)
	c.JSON(http.StatusOK, user)
}

// GetUser returns the user with energy reconciled.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	user, err := h.Game.GetUser(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Tap performs the tap action. "No energy" and "no such user" are one
// failure here, on purpose.
func (h *Handler) Tap(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	user, err := h.Game.Tap(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot tap - no energy or user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
