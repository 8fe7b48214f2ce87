package main

import (
	"log"

	api "classmon-backend/cmd/api"
	authdomain "classmon-backend/internal/auth/domain"
	authRepo "classmon-backend/internal/auth/repository"
	authUsecase "classmon-backend/internal/auth/usecase"
	notificationdomain "classmon-backend/internal/notification/domain"
	notificationRepo "classmon-backend/internal/notification/repository"
	notificationUsecase "classmon-backend/internal/notification/usecase"
	"classmon-backend/pkg/config"
	"classmon-backend/pkg/database"
	"classmon-backend/pkg/telegram"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Token signing and signup gating cannot run without their secrets.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.SignupKey == "" {
		log.Fatal("SIGNUP_KEY is required")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &notificationdomain.Notification{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	notifRepo := notificationRepo.NewGormNotificationRepository(db)

	// Optional Telegram alert relay
	var alerter notificationUsecase.Alerter
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != "" {
		alerter = telegram.NewClient(cfg.TelegramBotToken, cfg.TelegramChatID)
		log.Printf("[DEBUG] Telegram alert relay enabled")
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	notifUsecaseInstance := notificationUsecase.NewNotificationUsecase(notifRepo, alerter)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, notifUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
