package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"okcoin_backend/internal/bot"
	"okcoin_backend/internal/config"
	httpServer "okcoin_backend/internal/http"
	"okcoin_backend/internal/http/middleware"
	"okcoin_backend/internal/logger"
	"okcoin_backend/internal/repository"
	"okcoin_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	store := repository.NewStore()
	game := service.NewGameService(store)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, game, cfg.LeaderboardLimit)

	var gameBot *bot.GameBot
	if cfg.BotEnabled {
		var err error
		gameBot, err = bot.NewGameBot(cfg.BotToken, cfg.BotUsername, cfg.LeaderboardLimit, game)
		if err != nil {
			logger.Fatal("failed to start bot", "error", err)
		}
		go gameBot.Start()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	if gameBot != nil {
		gameBot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
