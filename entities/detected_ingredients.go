package entities

import (
	"time"

	"github.com/google/uuid"
)

type DetectedIngredients struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ImageURL      string    `json:"image_url"`
	DetectedItems string    `json:"detected_items" gorm:"type:text"` // JSON array of detected concepts
	Confirmed     bool      `json:"confirmed"`
	ProcessedAt   time.Time `gorm:"type:timestamp" json:"processed_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
