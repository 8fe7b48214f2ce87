package repository

import (
	"errors"
	"time"

	"classmon-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormNotificationRepository implements NotificationRepository using GORM
type gormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository
func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Create(notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.CreatedAt = time.Now()
	return r.db.Create(notification).Error
}

func (r *gormNotificationRepository) FindByID(id string) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.db.Where("id = ?", id).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *gormNotificationRepository) List(limit int) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := r.db.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) ListUnread() ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	err := r.db.Where("is_read = ?", false).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *gormNotificationRepository) MarkRead(id string) error {
	return r.db.Model(&domain.Notification{}).Where("id = ?", id).
		Update("is_read", true).Error
}

// MarkAllRead flips every unread row in a single UPDATE, so no caller can
// observe a partially swept state.
func (r *gormNotificationRepository) MarkAllRead() error {
	return r.db.Model(&domain.Notification{}).Where("is_read = ?", false).
		Update("is_read", true).Error
}

func (r *gormNotificationRepository) Delete(id string) error {
	return r.db.Delete(&domain.Notification{}, "id = ?", id).Error
}

func (r *gormNotificationRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&domain.Notification{}).Error
}
