package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFridgeItem    = "fridge item added successfully"
	MessageSuccessUpdateFridgeItem = "fridge item updated successfully"
	MessageSuccessDeleteFridgeItem = "fridge item deleted successfully"
	MessageSuccessGetFridgeItems   = "fridge items retrieved successfully"
	MessageSuccessGetExpiringItems = "expiring items retrieved successfully"
	MessageSuccessMarkAsConsumed   = "fridge item marked as consumed"
	MessageSuccessGetFridgeStats   = "fridge statistics retrieved successfully"
	MessageSuccessUploadItemImage  = "item image uploaded successfully"

	MessageFailedAddFridgeItem    = "failed to add fridge item"
	MessageFailedUpdateFridgeItem = "failed to update fridge item"
	MessageFailedDeleteFridgeItem = "failed to delete fridge item"
	MessageFailedGetFridgeItems   = "failed to retrieve fridge items"
	MessageFailedGetExpiringItems = "failed to retrieve expiring items"
	MessageFailedMarkAsConsumed   = "failed to mark fridge item as consumed"
	MessageFailedGetFridgeStats   = "failed to retrieve fridge statistics"
	MessageFailedUploadItemImage  = "failed to upload item image"

	ErrFridgeItemNotFound     = errors.New("fridge item not found")
	ErrInvalidExpirationDate  = errors.New("invalid expiration date")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrItemAlreadyConsumed    = errors.New("fridge item already consumed")
	ErrUnauthorizedItemAccess = errors.New("unauthorized access to fridge item")
)

type (
	AddFridgeItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Quantity        float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            string  `json:"unit" validate:"omitempty"`
		Category        string  `json:"category" validate:"omitempty"`
		PurchaseDate    string  `json:"purchase_date" validate:"omitempty"`
		ExpirationDate  string  `json:"expiration_date" validate:"required"`
		StorageLocation string  `json:"storage_location" validate:"omitempty"`
	}

	UpdateFridgeItemRequest struct {
		Name            string  `json:"name" validate:"omitempty"`
		Quantity        float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            string  `json:"unit" validate:"omitempty"`
		Category        string  `json:"category" validate:"omitempty"`
		ExpirationDate  string  `json:"expiration_date" validate:"omitempty"`
		StorageLocation string  `json:"storage_location" validate:"omitempty"`
	}

	UploadItemImageRequest struct {
		FridgeItemID string                `json:"fridge_item_id" form:"fridge_item_id" validate:"required,uuid"`
		Image        *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FridgeItemResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Quantity        float64    `json:"quantity"`
		Unit            string     `json:"unit,omitempty"`
		Category        string     `json:"category"`
		PurchaseDate    *time.Time `json:"purchase_date,omitempty"`
		ExpirationDate  time.Time  `json:"expiration_date"`
		StorageLocation string     `json:"storage_location"`
		ImageURL        string     `json:"image_url,omitempty"`
		IsConsumed      bool       `json:"is_consumed"`
		ConsumedDate    *time.Time `json:"consumed_date,omitempty"`
		CreatedAt       time.Time  `json:"created_at"`
	}

	FridgeStatsResponse struct {
		TotalItems         int `json:"total_items"`
		ExpiringSoon       int `json:"expiring_soon"`
		ExpiredItems       int `json:"expired_items"`
		ConsumedLast30Days int `json:"consumed_last_30_days"`
	}
)
