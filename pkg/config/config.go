package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DatabaseURL      string
	JWTSecret        string
	JWTExpiry        time.Duration
	SignupKey        string
	TelegramBotToken string
	TelegramChatID   string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	expiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			expiry = parsed
		}
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=classmon port=5432 sslmode=disable"),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTExpiry:        expiry,
		SignupKey:        getEnv("SIGNUP_KEY", ""),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
