package http

import (
	"okcoin_backend/internal/http/handlers"
	"okcoin_backend/internal/http/middleware"
	"okcoin_backend/internal/service"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, game *service.GameService, topLimit int) {
	h := handlers.NewHandler(game, topLimit)
	healthHandler := handlers.NewHealthHandler()

	r.GET("/healthz", healthHandler.Liveness)

	api := r.Group("/api")
	api.Use(middleware.Metrics())

	api.GET("/health", healthHandler.Health)

	// Users and the tap action
	api.POST("/users", h.CreateUser)
	api.GET("/users/:id", h.GetUser)
	api.POST("/users/:id/tap", h.Tap)

	// Tasks
	api.GET("/tasks", h.ListTasks)
	api.GET("/users/:id/tasks", h.UserTasks)
	api.POST("/users/:id/tasks/:taskId/complete", h.CompleteTask)

	// Referral system
	api.POST("/referrals", h.CreateReferral)
	api.GET("/users/:id/referrals", h.UserReferrals)

	// Leaderboard
	api.GET("/leaderboard", h.Leaderboard)
	api.GET("/users/:id/rank", h.UserRank)
}
