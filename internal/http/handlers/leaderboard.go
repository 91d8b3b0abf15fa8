package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Leaderboard returns the top users by coins with 1-based ranks.
func (h *Handler) Leaderboard(c *gin.Context) {
	limit := h.TopLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	c.JSON(http.StatusOK, h.Game.Leaderboard(limit))
}

// UserRank returns the user's leaderboard position, 999 if unranked.
func (h *Handler) UserRank(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rank": h.Game.UserRank(userID)})
}
