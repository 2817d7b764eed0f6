package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessDetectIngredients = "ingredients detected successfully"
	MessageSuccessGetPendingScans   = "pending detections retrieved successfully"
	MessageSuccessConfirmDetection  = "detected ingredients confirmed successfully"
	MessageSuccessGetFoodInfo       = "food information retrieved successfully"

	MessageFailedDetectIngredients = "failed to detect ingredients"
	MessageFailedGetPendingScans   = "failed to retrieve pending detections"
	MessageFailedConfirmDetection  = "failed to confirm detected ingredients"
	MessageFailedGetFoodInfo       = "failed to retrieve food information"

	ErrDetectionNotFound         = errors.New("detection not found")
	ErrDetectionAlreadyConfirmed = errors.New("detection already confirmed")
	ErrNoIngredientsDetected     = errors.New("no food items detected in image")
	ErrClarifaiFailed            = errors.New("food recognition API processing failed")
)

type (
	DetectIngredientsRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	DetectedConcept struct {
		Name       string  `json:"name"`
		Confidence float64 `json:"confidence"`
	}

	DetectedItemSuggestion struct {
		Name                string    `json:"name"`
		Confidence          float64   `json:"confidence"`
		Category            string    `json:"category"`
		SuggestedExpiration time.Time `json:"suggested_expiration"`
	}

	DetectionResponse struct {
		DetectionID string                   `json:"detection_id"`
		ImageURL    string                   `json:"image_url"`
		Confirmed   bool                     `json:"confirmed"`
		ProcessedAt time.Time                `json:"processed_at"`
		Items       []DetectedItemSuggestion `json:"items"`
	}

	ConfirmedItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Quantity        float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            string  `json:"unit" validate:"omitempty"`
		Category        string  `json:"category" validate:"omitempty"`
		ExpirationDate  string  `json:"expiration_date" validate:"required"`
		StorageLocation string  `json:"storage_location" validate:"omitempty"`
	}

	ConfirmDetectionRequest struct {
		DetectionID string                 `json:"detection_id" validate:"required,uuid"`
		Items       []ConfirmedItemRequest `json:"items" validate:"required,dive"`
	}

	FoodInfoResponse struct {
		Name          string                 `json:"name"`
		Category      string                 `json:"category"`
		ShelfLifeDays int                    `json:"shelf_life_days"`
		Nutriments    map[string]interface{} `json:"nutriments,omitempty"`
	}
)
