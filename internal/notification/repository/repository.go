package repository

import "classmon-backend/internal/notification/domain"

// NotificationRepository is the persistence boundary for the notification
// ledger. FindByID returns (nil, nil) when no row matches.
type NotificationRepository interface {
	Create(notification *domain.Notification) error
	FindByID(id string) (*domain.Notification, error)
	List(limit int) ([]*domain.Notification, error)
	ListUnread() ([]*domain.Notification, error)
	MarkRead(id string) error
	MarkAllRead() error
	Delete(id string) error
	DeleteAll() error
}
