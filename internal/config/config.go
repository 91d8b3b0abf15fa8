package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	BotToken    string
	BotUsername string
	BotEnabled  bool

	LogLevel string
	LogJSON  bool

	// Leaderboard
	LeaderboardLimit int
}

// Загрузка конфига из env
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	botToken := os.Getenv("BOT_TOKEN")
	botEnabled := os.Getenv("BOT_ENABLED") == "true" && botToken != ""

	botUsername := os.Getenv("BOT_USERNAME")
	if botUsername == "" {
		botUsername = "CryptoOkayBot" // ! если не установлено в env !
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logJSON := os.Getenv("LOG_JSON") == "true"

	leaderboardLimit := 10 // строк в топе по умолчанию
	if v := os.Getenv("LEADERBOARD_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			leaderboardLimit = n
		}
	}

	return &Config{
		AppPort:          port,
		BotToken:         botToken,
		BotUsername:      botUsername,
		BotEnabled:       botEnabled,
		LogLevel:         logLevel,
		LogJSON:          logJSON,
		LeaderboardLimit: leaderboardLimit,
	}
}
