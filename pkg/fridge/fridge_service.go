package fridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/entities"
	"Smart-Fridge-Manager/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		AddFridgeItem(ctx context.Context, req domain.AddFridgeItemRequest, userID string) (domain.FridgeItemResponse, error)
		UpdateFridgeItem(ctx context.Context, id string, req domain.UpdateFridgeItemRequest, userID string) error
		DeleteFridgeItem(ctx context.Context, id string, userID string) error
		GetFridgeItems(ctx context.Context, userID, category, location string, page, limit int) ([]domain.FridgeItemResponse, int64, error)
		GetFridgeItemByID(ctx context.Context, id string, userID string) (domain.FridgeItemResponse, error)
		GetExpiringItems(ctx context.Context, userID string, thresholdDays int) ([]domain.FridgeItemResponse, error)
		MarkAsConsumed(ctx context.Context, id string, userID string) error
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (string, error)
		GetFridgeStats(ctx context.Context, userID string) (domain.FridgeStatsResponse, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
		s3               storage.AwsS3
	}
)

func NewFridgeService(fridgeRepository FridgeRepository, s3 storage.AwsS3) FridgeService {
	return &fridgeService{
		fridgeRepository: fridgeRepository,
		s3:               s3,
	}
}

func toFridgeItemResponse(item *entities.FridgeItem) domain.FridgeItemResponse {
	return domain.FridgeItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		Category:        item.Category,
		PurchaseDate:    item.PurchaseDate,
		ExpirationDate:  item.ExpirationDate,
		StorageLocation: item.StorageLocation,
		ImageURL:        item.ImageURL,
		IsConsumed:      item.IsConsumed,
		ConsumedDate:    item.ConsumedDate,
		CreatedAt:       item.CreatedAt,
	}
}

func (s *fridgeService) AddFridgeItem(ctx context.Context, req domain.AddFridgeItemRequest, userID string) (domain.FridgeItemResponse, error) {
	expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
	if err != nil {
		return domain.FridgeItemResponse{}, domain.ErrInvalidExpirationDate
	}

	if req.Quantity < 0 {
		return domain.FridgeItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FridgeItemResponse{}, domain.ErrParseUUID
	}

	var purchaseDate *time.Time
	if req.PurchaseDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.FridgeItemResponse{}, domain.ErrInvalidExpirationDate
		}
		purchaseDate = &parsed
	}

	category := req.Category
	if category == "" {
		category = "other"
	}
	location := req.StorageLocation
	if location == "" {
		location = "fridge"
	}

	item := &entities.FridgeItem{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            req.Name,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		Category:        category,
		PurchaseDate:    purchaseDate,
		ExpirationDate:  expirationDate,
		StorageLocation: location,
	}

	if err := s.fridgeRepository.AddFridgeItem(ctx, item); err != nil {
		return domain.FridgeItemResponse{}, err
	}

	return toFridgeItemResponse(item), nil
}

func (s *fridgeService) getOwnedItem(ctx context.Context, id string, userID string) (*entities.FridgeItem, error) {
	item, err := s.fridgeRepository.GetFridgeItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedItemAccess
	}

	return item, nil
}

func (s *fridgeService) UpdateFridgeItem(ctx context.Context, id string, req domain.UpdateFridgeItemRequest, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.StorageLocation != "" {
		item.StorageLocation = req.StorageLocation
	}
	if req.ExpirationDate != "" {
		expirationDate, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpirationDate
		}
		item.ExpirationDate = expirationDate
	}

	return s.fridgeRepository.UpdateFridgeItem(ctx, item)
}

func (s *fridgeService) DeleteFridgeItem(ctx context.Context, id string, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.fridgeRepository.DeleteFridgeItem(ctx, id)
}

func (s *fridgeService) GetFridgeItems(ctx context.Context, userID, category, location string, page, limit int) ([]domain.FridgeItemResponse, int64, error) {
	items, count, err := s.fridgeRepository.GetFridgeItems(ctx, userID, category, location, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.FridgeItemResponse
	for _, item := range items {
		response = append(response, toFridgeItemResponse(item))
	}

	return response, count, nil
}

func (s *fridgeService) GetFridgeItemByID(ctx context.Context, id string, userID string) (domain.FridgeItemResponse, error) {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.FridgeItemResponse{}, err
	}
	return toFridgeItemResponse(item), nil
}

func (s *fridgeService) GetExpiringItems(ctx context.Context, userID string, thresholdDays int) ([]domain.FridgeItemResponse, error) {
	if thresholdDays < 1 {
		thresholdDays = 3
	}

	items, err := s.fridgeRepository.GetExpiringItems(ctx, userID, thresholdDays)
	if err != nil {
		return nil, err
	}

	var response []domain.FridgeItemResponse
	for _, item := range items {
		response = append(response, toFridgeItemResponse(item))
	}

	return response, nil
}

func (s *fridgeService) MarkAsConsumed(ctx context.Context, id string, userID string) error {
	item, err := s.getOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if item.IsConsumed {
		return domain.ErrItemAlreadyConsumed
	}

	now := time.Now()
	item.IsConsumed = true
	item.ConsumedDate = &now

	return s.fridgeRepository.UpdateFridgeItem(ctx, item)
}

func (s *fridgeService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) (string, error) {
	item, err := s.getOwnedItem(ctx, req.FridgeItemID, userID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("fridge-item-%s", item.ID.String())
	var objectKey string

	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(fileName, req.Image, "fridge-items", storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "fridge-items", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.fridgeRepository.UpdateFridgeItem(ctx, item); err != nil {
		return "", err
	}

	return item.ImageURL, nil
}

func (s *fridgeService) GetFridgeStats(ctx context.Context, userID string) (domain.FridgeStatsResponse, error) {
	stats, err := s.fridgeRepository.GetFridgeStats(ctx, userID)
	if err != nil {
		return domain.FridgeStatsResponse{}, err
	}

	return domain.FridgeStatsResponse{
		TotalItems:         int(stats["total_items"]),
		ExpiringSoon:       int(stats["expiring_soon"]),
		ExpiredItems:       int(stats["expired_items"]),
		ConsumedLast30Days: int(stats["consumed_last_30_days"]),
	}, nil
}
