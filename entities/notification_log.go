package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLog is append-only: one row per (user, item, type) after a
// successful send. The start-of-day lookup on SentAt is the only thing
// preventing duplicate notifications within the same calendar day.
type NotificationLog struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	FridgeItemID     uuid.UUID `json:"fridge_item_id"`
	NotificationType string    `gorm:"index:idx_notification_user_type" json:"notification_type"`
	SentAt           time.Time `gorm:"type:timestamp;index" json:"sent_at"`

	User       *User       `gorm:"foreignKey:UserID"`
	FridgeItem *FridgeItem `gorm:"foreignKey:FridgeItemID"`
}
