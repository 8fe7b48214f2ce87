package api

import (
	"net/http"

	"classmon-backend/internal/auth/delivery"
	authUsecase "classmon-backend/internal/auth/usecase"
	notificationDelivery "classmon-backend/internal/notification/delivery"
	notificationUsecase "classmon-backend/internal/notification/usecase"
	"classmon-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, notifUc notificationUsecase.NotificationUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc, cfg)
	adminHandler := delivery.NewAdminHandler(authUc)
	notificationHandler := notificationDelivery.NewNotificationHandler(notifUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	user := r.Group("/user")
	{
		user.POST("/signup", authHandler.Signup)
		user.POST("/login", authHandler.Login)
		user.POST("/logout", delivery.AuthMiddleware(authUc), authHandler.Logout)
	}

	// Admin routes (protected, role checked in the usecase)
	admin := r.Group("/admin")
	admin.Use(delivery.AuthMiddleware(authUc))
	{
		admin.POST("/create/user", adminHandler.RegisterStaff)
		admin.DELETE("/terminate/user/:id", adminHandler.TerminateUser)
		admin.GET("/get/staffs", adminHandler.ListStaff)
	}

	// Notification routes: creation is called by the trusted sensor
	// ingester, reads and read-state mutations by the polling clients.
	notifications := r.Group("/notifications")
	{
		notifications.POST("/create", notificationHandler.CreateNotification)
		notifications.GET("", notificationHandler.GetAllNotifications)
		notifications.GET("/unread", notificationHandler.GetUnreadNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkAsRead)
		notifications.PATCH("/read-all", notificationHandler.MarkAllAsRead)
		notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		notifications.DELETE("", notificationHandler.DeleteAllNotifications)
	}
}
