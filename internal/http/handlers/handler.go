package handlers

import (
	"strconv"

	"okcoin_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Game *service.GameService
	// TopLimit is the leaderboard size when the request names none.
	TopLimit int
}

func NewHandler(game *service.GameService, topLimit int) *Handler {
	if topLimit <= 0 {
		topLimit = 10
	}
	return &Handler{Game: game, TopLimit: topLimit}
}

// pathID извлекает числовой id из параметра пути
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
