package notification

import (
	"context"
	"time"

	"Smart-Fridge-Manager/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		ListNotifiableUsers(ctx context.Context) ([]*entities.User, error)
		HasLoggedToday(ctx context.Context, userID string, notificationType string) (bool, error)
		AppendLogEntries(ctx context.Context, userID string, itemIDs []uuid.UUID, notificationType string) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// startOfToday is the local-calendar-day boundary used by the duplicate-send
// guard.
func startOfToday(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (r *notificationRepository) ListNotifiableUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User

	if err := r.db.WithContext(ctx).
		Where("notification_enabled = ?", true).
		Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *notificationRepository) HasLoggedToday(ctx context.Context, userID string, notificationType string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&entities.NotificationLog{}).
		Where("user_id = ? AND notification_type = ? AND sent_at >= ?",
			userID, notificationType, startOfToday(time.Now())).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *notificationRepository) AppendLogEntries(ctx context.Context, userID string, itemIDs []uuid.UUID, notificationType string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	now := time.Now()
	entries := make([]entities.NotificationLog, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		entries = append(entries, entities.NotificationLog{
			ID:               uuid.New(),
			UserID:           userUUID,
			FridgeItemID:     itemID,
			NotificationType: notificationType,
			SentAt:           now,
		})
	}

	return r.db.WithContext(ctx).Create(&entries).Error
}
