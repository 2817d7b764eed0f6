package detection

import (
	"context"

	"Smart-Fridge-Manager/entities"

	"gorm.io/gorm"
)

type (
	DetectionRepository interface {
		CreateDetection(ctx context.Context, detection *entities.DetectedIngredients) error
		GetDetectionByID(ctx context.Context, id string) (*entities.DetectedIngredients, error)
		GetPendingDetections(ctx context.Context, userID string) ([]*entities.DetectedIngredients, error)
		UpdateDetection(ctx context.Context, detection *entities.DetectedIngredients) error
	}

	detectionRepository struct {
		db *gorm.DB
	}
)

func NewDetectionRepository(db *gorm.DB) DetectionRepository {
	return &detectionRepository{db: db}
}

func (r *detectionRepository) CreateDetection(ctx context.Context, detection *entities.DetectedIngredients) error {
	return r.db.WithContext(ctx).Create(detection).Error
}

func (r *detectionRepository) GetDetectionByID(ctx context.Context, id string) (*entities.DetectedIngredients, error) {
	var detection entities.DetectedIngredients
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&detection).Error; err != nil {
		return nil, err
	}
	return &detection, nil
}

func (r *detectionRepository) GetPendingDetections(ctx context.Context, userID string) ([]*entities.DetectedIngredients, error) {
	var detections []*entities.DetectedIngredients

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND confirmed = ?", userID, false).
		Order("processed_at desc").
		Find(&detections).Error; err != nil {
		return nil, err
	}

	return detections, nil
}

func (r *detectionRepository) UpdateDetection(ctx context.Context, detection *entities.DetectedIngredients) error {
	return r.db.WithContext(ctx).Save(detection).Error
}
