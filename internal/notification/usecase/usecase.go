package usecase

import "classmon-backend/internal/notification/domain"

// NotificationUsecase exposes the ledger operations behind the polling
// contract.
type NotificationUsecase interface {
	Create(message, typ, snapshot string, peopleCount int, fanStatus bool) (*domain.Notification, error)
	ListAll() ([]*domain.Notification, error)
	ListUnread() ([]*domain.Notification, error)
	MarkRead(id string) (*domain.Notification, error)
	MarkAllRead() error
	Delete(id string) error
	DeleteAll() error
}

// Alerter relays a created notification to an out-of-band channel.
type Alerter interface {
	SendMessage(text string) error
}
