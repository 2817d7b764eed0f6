package entities

import (
	"time"

	"github.com/google/uuid"
)

type FridgeItem struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Name            string     `json:"name"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit,omitempty"`
	Category        string     `json:"category"`
	PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
	ExpirationDate  time.Time  `json:"expiration_date"`
	StorageLocation string     `json:"storage_location"` // "fridge", "freezer", "pantry"
	ImageURL        string     `json:"image_url,omitempty"`
	IsConsumed      bool       `json:"is_consumed"`
	ConsumedDate    *time.Time `json:"consumed_date,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
