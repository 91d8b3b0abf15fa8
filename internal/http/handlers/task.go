package handlers

import (
	"errors"
	"net/http"

	"okcoin_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListTasks returns all active task definitions.
func (h *Handler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.Game.ActiveTasks())
}

// UserTasks returns the active tasks joined with the user's progress.
func (h *Handler) UserTasks(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}

	c.JSON(http.StatusOK, h.Game.UserTasksWithProgress(userID))
}

// CompleteTask marks a task completed and credits its reward.
func (h *Handler) CompleteTask(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID"})
		return
	}
	taskID, ok := pathID(c, "taskId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid task ID"})
		return
	}

	user, err := h.Game.CompleteTask(userID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User or task not found"})
		case errors.Is(err, service.ErrTaskCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Task already completed"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
