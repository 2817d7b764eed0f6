package fridge

import (
	"context"
	"time"

	"Smart-Fridge-Manager/entities"

	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		AddFridgeItem(ctx context.Context, item *entities.FridgeItem) error
		GetFridgeItemByID(ctx context.Context, id string) (*entities.FridgeItem, error)
		UpdateFridgeItem(ctx context.Context, item *entities.FridgeItem) error
		DeleteFridgeItem(ctx context.Context, id string) error
		GetFridgeItems(ctx context.Context, userID, category, location string, page, limit int) ([]*entities.FridgeItem, int64, error)
		GetExpiringItems(ctx context.Context, userID string, thresholdDays int) ([]*entities.FridgeItem, error)
		GetActiveItems(ctx context.Context, userID string) ([]*entities.FridgeItem, error)
		GetFridgeStats(ctx context.Context, userID string) (map[string]int64, error)
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

// ExpiryWindow returns the inclusive [start of today, end of the threshold day]
// range for the expiring-items query. Both bounds are truncated to local dates
// so an item expiring exactly thresholdDays from today is included.
func ExpiryWindow(now time.Time, thresholdDays int) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, thresholdDays)
	return start, end
}

func (r *fridgeRepository) AddFridgeItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *fridgeRepository) GetFridgeItemByID(ctx context.Context, id string) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *fridgeRepository) UpdateFridgeItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *fridgeRepository) DeleteFridgeItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FridgeItem{}).Error
}

func (r *fridgeRepository) GetFridgeItems(ctx context.Context, userID, category, location string, page, limit int) ([]*entities.FridgeItem, int64, error) {
	var items []*entities.FridgeItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ? AND is_consumed = ?", userID, false)

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if location != "" && location != "all" {
		query = query.Where("storage_location = ?", location)
	}

	if err := query.Model(&entities.FridgeItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiration_date asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *fridgeRepository) GetExpiringItems(ctx context.Context, userID string, thresholdDays int) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem

	start, end := ExpiryWindow(time.Now(), thresholdDays)

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ? AND expiration_date BETWEEN ? AND ?",
			userID, false, start, end).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *fridgeRepository) GetActiveItems(ctx context.Context, userID string) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ?", userID, false).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *fridgeRepository) GetFridgeStats(ctx context.Context, userID string) (map[string]int64, error) {
	var totalItems, expiringSoon, expiredItems, consumedRecent int64

	if err := r.db.WithContext(ctx).Model(&entities.FridgeItem{}).
		Where("user_id = ? AND is_consumed = ?", userID, false).
		Count(&totalItems).Error; err != nil {
		return nil, err
	}

	start, end := ExpiryWindow(time.Now(), 3)
	if err := r.db.WithContext(ctx).Model(&entities.FridgeItem{}).
		Where("user_id = ? AND is_consumed = ? AND expiration_date BETWEEN ? AND ?",
			userID, false, start, end).
		Count(&expiringSoon).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FridgeItem{}).
		Where("user_id = ? AND is_consumed = ? AND expiration_date < ?",
			userID, false, start).
		Count(&expiredItems).Error; err != nil {
		return nil, err
	}

	monthAgo := time.Now().AddDate(0, 0, -30)
	if err := r.db.WithContext(ctx).Model(&entities.FridgeItem{}).
		Where("user_id = ? AND is_consumed = ? AND consumed_date >= ?",
			userID, true, monthAgo).
		Count(&consumedRecent).Error; err != nil {
		return nil, err
	}

	return map[string]int64{
		"total_items":           totalItems,
		"expiring_soon":         expiringSoon,
		"expired_items":         expiredItems,
		"consumed_last_30_days": consumedRecent,
	}, nil
}
