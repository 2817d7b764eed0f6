package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`

	// Expiration notification preferences
	NotificationEnabled    bool `gorm:"default:true" json:"notification_enabled"`
	NotificationDaysBefore int  `gorm:"default:2" json:"notification_days_before"`

	FridgeItems []*FridgeItem `gorm:"foreignKey:UserID"`
	Timestamp
}
