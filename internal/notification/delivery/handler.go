package delivery

import (
	"errors"
	"log"
	"net/http"

	"classmon-backend/internal/notification/domain"
	"classmon-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles the notification feed endpoints
type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// CreateNotificationRequest represents the request body for creating a
// notification. Timestamps are never accepted from the caller.
type CreateNotificationRequest struct {
	Message     string `json:"message" binding:"required"`
	Type        string `json:"type"`
	Snapshot    string `json:"snapshot"`
	PeopleCount int    `json:"peopleCount" binding:"gte=0"`
	FanStatus   bool   `json:"fanStatus"`
}

// CreateNotification records an observed sensor event
// POST /notifications/create
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message is required"})
		return
	}

	notification, err := h.notificationUsecase.Create(req.Message, req.Type, req.Snapshot, req.PeopleCount, req.FanStatus)
	if err != nil {
		log.Printf("[ERROR] create notification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating notification"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Notification created successfully",
		"notification": notification,
	})
}

// GetAllNotifications returns the most recent notifications, newest first
// GET /notifications
func (h *NotificationHandler) GetAllNotifications(c *gin.Context) {
	notifications, err := h.notificationUsecase.ListAll()
	if err != nil {
		log.Printf("[ERROR] list notifications failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// GetUnreadNotifications returns every unread notification, newest first
// GET /notifications/unread
func (h *NotificationHandler) GetUnreadNotifications(c *gin.Context) {
	notifications, err := h.notificationUsecase.ListUnread()
	if err != nil {
		log.Printf("[ERROR] list unread notifications failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching unread notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

// MarkAsRead marks one notification read; repeating the call is a no-op
// PATCH /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	id := c.Param("id")

	notification, err := h.notificationUsecase.MarkRead(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
			return
		}
		log.Printf("[ERROR] mark notification read failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read",
		"notification": notification,
	})
}

// MarkAllAsRead marks every unread notification read
// PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	if err := h.notificationUsecase.MarkAllRead(); err != nil {
		log.Printf("[ERROR] mark all notifications read failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// DeleteNotification removes one notification
// DELETE /notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id := c.Param("id")

	if err := h.notificationUsecase.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
			return
		}
		log.Printf("[ERROR] delete notification failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification deleted successfully"})
}

// DeleteAllNotifications clears the ledger
// DELETE /notifications
func (h *NotificationHandler) DeleteAllNotifications(c *gin.Context) {
	if err := h.notificationUsecase.DeleteAll(); err != nil {
		log.Printf("[ERROR] delete all notifications failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications deleted successfully"})
}
