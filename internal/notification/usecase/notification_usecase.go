package usecase

import (
	"log"

	"classmon-backend/internal/notification/domain"
	"classmon-backend/internal/notification/repository"
)

// feedLimit bounds the response size of the full feed. Callers needing more
// history are deliberately unsupported; there is no pagination cursor.
const feedLimit = 50

// notificationUsecase implements NotificationUsecase interface
type notificationUsecase struct {
	repo    repository.NotificationRepository
	alerter Alerter
}

// NewNotificationUsecase creates a new instance of notificationUsecase.
// alerter may be nil when no out-of-band relay is configured.
func NewNotificationUsecase(repo repository.NotificationRepository, alerter Alerter) NotificationUsecase {
	return &notificationUsecase{
		repo:    repo,
		alerter: alerter,
	}
}

func (u *notificationUsecase) Create(message, typ, snapshot string, peopleCount int, fanStatus bool) (*domain.Notification, error) {
	// Unknown types are coerced to alert rather than rejected; the sensor
	// pipeline is trusted but loosely versioned.
	notificationType := domain.Type(typ)
	if !notificationType.Valid() {
		notificationType = domain.TypeAlert
	}

	notification := &domain.Notification{
		Message:     message,
		Type:        notificationType,
		Snapshot:    snapshot,
		PeopleCount: peopleCount,
		FanStatus:   fanStatus,
	}

	if err := u.repo.Create(notification); err != nil {
		return nil, err
	}

	if u.alerter != nil {
		go func(text string) {
			if err := u.alerter.SendMessage(text); err != nil {
				log.Printf("[WARN] telegram relay failed: %v", err)
			}
		}(notification.Message)
	}

	return notification, nil
}

func (u *notificationUsecase) ListAll() ([]*domain.Notification, error) {
	return u.repo.List(feedLimit)
}

func (u *notificationUsecase) ListUnread() ([]*domain.Notification, error) {
	return u.repo.ListUnread()
}

// MarkRead is idempotent: marking an already-read notification again is a
// no-op success so the client can retry after a slow network.
func (u *notificationUsecase) MarkRead(id string) (*domain.Notification, error) {
	notification, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, domain.ErrNotFound
	}

	if !notification.IsRead {
		if err := u.repo.MarkRead(id); err != nil {
			return nil, err
		}
		notification.IsRead = true
	}

	return notification, nil
}

func (u *notificationUsecase) MarkAllRead() error {
	return u.repo.MarkAllRead()
}

func (u *notificationUsecase) Delete(id string) error {
	notification, err := u.repo.FindByID(id)
	if err != nil {
		return err
	}
	if notification == nil {
		return domain.ErrNotFound
	}
	return u.repo.Delete(id)
}

func (u *notificationUsecase) DeleteAll() error {
	return u.repo.DeleteAll()
}
