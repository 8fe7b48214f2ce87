package api

import (
	"net/http"

	authUsecase "classmon-backend/internal/auth/usecase"
	notificationUsecase "classmon-backend/internal/notification/usecase"
	"classmon-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	router *gin.Engine
}

func NewHandler(authUc authUsecase.AuthUsecase, notifUc notificationUsecase.NotificationUsecase, cfg *config.Config) *Handler {
	router := gin.Default()
	router.Use(corsMiddleware())

	SetupRoutes(router, authUc, notifUc, cfg)

	return &Handler{router: router}
}

// Router exposes the underlying engine for tests.
func (h *Handler) Router() *gin.Engine {
	return h.router
}

func (h *Handler) Start(addr string) error {
	return h.router.Run(addr)
}

// corsMiddleware echoes the request origin with credentials allowed. The
// cookie transport needs credentials, which rules out a wildcard origin.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
