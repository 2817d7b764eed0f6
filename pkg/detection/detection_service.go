package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/entities"
	"Smart-Fridge-Manager/internal/utils"
	"Smart-Fridge-Manager/internal/utils/storage"
	"Smart-Fridge-Manager/pkg/fridge"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultShelfLifeDays = 7
	minConfidence        = 0.8
)

// shelfLifeTable maps food category keywords to estimated shelf life in days.
// Ordered so more specific keywords win over broader categories.
var shelfLifeTable = []struct {
	keyword string
	days    int
}{
	{"chicken", 2},
	{"fish", 2},
	{"seafood", 2},
	{"beef", 3},
	{"meat", 3},
	{"leftovers", 3},
	{"cooked food", 3},
	{"leafy greens", 5},
	{"berries", 5},
	{"bread", 5},
	{"milk", 7},
	{"dairy", 7},
	{"vegetables", 7},
	{"fruits", 7},
	{"cheese", 14},
	{"eggs", 21},
}

type (
	DetectionService interface {
		DetectIngredients(ctx context.Context, req domain.DetectIngredientsRequest, userID string) (domain.DetectionResponse, error)
		GetPendingDetections(ctx context.Context, userID string) ([]domain.DetectionResponse, error)
		ConfirmDetection(ctx context.Context, req domain.ConfirmDetectionRequest, userID string) ([]domain.FridgeItemResponse, error)
		GetFoodInfo(ctx context.Context, foodName string) (domain.FoodInfoResponse, error)
	}

	detectionService struct {
		detectionRepository DetectionRepository
		fridgeRepository    fridge.FridgeRepository
		s3                  storage.AwsS3
		httpClient          *http.Client

		clarifaiURL      string
		openFoodFactsURL string
	}
)

func NewDetectionService(
	detectionRepository DetectionRepository,
	fridgeRepository fridge.FridgeRepository,
	s3 storage.AwsS3,
) DetectionService {
	return &detectionService{
		detectionRepository: detectionRepository,
		fridgeRepository:    fridgeRepository,
		s3:                  s3,
		httpClient:          &http.Client{Timeout: 30 * time.Second},
		clarifaiURL:         "https://api.clarifai.com/v2/models/food-item-recognition/outputs",
		openFoodFactsURL:    "https://world.openfoodfacts.org/cgi/search.pl",
	}
}

func (s *detectionService) DetectIngredients(ctx context.Context, req domain.DetectIngredientsRequest, userID string) (domain.DetectionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.DetectionResponse{}, domain.ErrParseUUID
	}

	detectionID := uuid.New()
	fileName := fmt.Sprintf("fridge-photo-%s", detectionID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "fridge-photos", storage.AllowImage...)
	if err != nil {
		return domain.DetectionResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	concepts, err := s.detectWithClarifai(ctx, imageURL)
	if err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.DetectionResponse{}, err
	}

	if len(concepts) == 0 {
		_ = s.s3.DeleteFile(objectKey)
		return domain.DetectionResponse{}, domain.ErrNoIngredientsDetected
	}

	suggestions := make([]domain.DetectedItemSuggestion, 0, len(concepts))
	now := time.Now()
	for _, concept := range concepts {
		info, err := s.GetFoodInfo(ctx, concept.Name)
		if err != nil {
			// Lookup failures fall back to the default shelf life estimate.
			info = domain.FoodInfoResponse{
				Name:          concept.Name,
				Category:      "Unknown",
				ShelfLifeDays: estimateShelfLife(concept.Name),
			}
		}

		suggestions = append(suggestions, domain.DetectedItemSuggestion{
			Name:                concept.Name,
			Confidence:          concept.Confidence,
			Category:            info.Category,
			SuggestedExpiration: now.AddDate(0, 0, info.ShelfLifeDays),
		})
	}

	detectedJSON, err := json.Marshal(suggestions)
	if err != nil {
		return domain.DetectionResponse{}, err
	}

	detection := &entities.DetectedIngredients{
		ID:            detectionID,
		UserID:        userUUID,
		ImageURL:      imageURL,
		DetectedItems: string(detectedJSON),
		ProcessedAt:   now,
	}

	if err := s.detectionRepository.CreateDetection(ctx, detection); err != nil {
		return domain.DetectionResponse{}, err
	}

	return domain.DetectionResponse{
		DetectionID: detection.ID.String(),
		ImageURL:    imageURL,
		Confirmed:   false,
		ProcessedAt: now,
		Items:       suggestions,
	}, nil
}

func (s *detectionService) detectWithClarifai(ctx context.Context, imageURL string) ([]domain.DetectedConcept, error) {
	apiKey := utils.GetConfig("CLARIFAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CLARIFAI_API_KEY not set")
	}

	requestBody := map[string]interface{}{
		"inputs": []map[string]interface{}{
			{
				"data": map[string]interface{}{
					"image": map[string]interface{}{
						"url": imageURL,
					},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.clarifaiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Key "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("clarifai API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var clarifaiResp struct {
		Outputs []struct {
			Data struct {
				Concepts []struct {
					Name  string  `json:"name"`
					Value float64 `json:"value"`
				} `json:"concepts"`
			} `json:"data"`
		} `json:"outputs"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&clarifaiResp); err != nil {
		return nil, err
	}

	if len(clarifaiResp.Outputs) == 0 {
		return nil, domain.ErrClarifaiFailed
	}

	var concepts []domain.DetectedConcept
	for _, concept := range clarifaiResp.Outputs[0].Data.Concepts {
		if concept.Value < minConfidence {
			continue
		}
		concepts = append(concepts, domain.DetectedConcept{
			Name:       concept.Name,
			Confidence: concept.Value,
		})
	}

	return concepts, nil
}

func (s *detectionService) GetPendingDetections(ctx context.Context, userID string) ([]domain.DetectionResponse, error) {
	detections, err := s.detectionRepository.GetPendingDetections(ctx, userID)
	if err != nil {
		return nil, err
	}

	var response []domain.DetectionResponse
	for _, detection := range detections {
		var items []domain.DetectedItemSuggestion
		if err := json.Unmarshal([]byte(detection.DetectedItems), &items); err != nil {
			continue
		}

		response = append(response, domain.DetectionResponse{
			DetectionID: detection.ID.String(),
			ImageURL:    detection.ImageURL,
			Confirmed:   detection.Confirmed,
			ProcessedAt: detection.ProcessedAt,
			Items:       items,
		})
	}

	return response, nil
}

func (s *detectionService) ConfirmDetection(ctx context.Context, req domain.ConfirmDetectionRequest, userID string) ([]domain.FridgeItemResponse, error) {
	detection, err := s.detectionRepository.GetDetectionByID(ctx, req.DetectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDetectionNotFound
		}
		return nil, err
	}

	if detection.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}

	if detection.Confirmed {
		return nil, domain.ErrDetectionAlreadyConfirmed
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var added []domain.FridgeItemResponse
	for _, itemReq := range req.Items {
		expirationDate, err := time.Parse("2006-01-02", itemReq.ExpirationDate)
		if err != nil {
			return nil, domain.ErrInvalidExpirationDate
		}

		category := itemReq.Category
		if category == "" {
			category = "other"
		}
		location := itemReq.StorageLocation
		if location == "" {
			location = "fridge"
		}

		item := &entities.FridgeItem{
			ID:              uuid.New(),
			UserID:          userUUID,
			Name:            itemReq.Name,
			Quantity:        itemReq.Quantity,
			Unit:            itemReq.Unit,
			Category:        category,
			ExpirationDate:  expirationDate,
			StorageLocation: location,
			ImageURL:        detection.ImageURL,
		}

		if err := s.fridgeRepository.AddFridgeItem(ctx, item); err != nil {
			return nil, err
		}

		added = append(added, domain.FridgeItemResponse{
			ID:              item.ID.String(),
			Name:            item.Name,
			Quantity:        item.Quantity,
			Unit:            item.Unit,
			Category:        item.Category,
			ExpirationDate:  item.ExpirationDate,
			StorageLocation: item.StorageLocation,
			ImageURL:        item.ImageURL,
		})
	}

	detection.Confirmed = true
	if err := s.detectionRepository.UpdateDetection(ctx, detection); err != nil {
		return nil, err
	}

	return added, nil
}

func (s *detectionService) GetFoodInfo(ctx context.Context, foodName string) (domain.FoodInfoResponse, error) {
	reqURL := fmt.Sprintf("%s?search_terms=%s&json=true", s.openFoodFactsURL, url.QueryEscape(foodName))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.FoodInfoResponse{}, err
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return domain.FoodInfoResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.FoodInfoResponse{}, fmt.Errorf("open food facts error: %s", resp.Status)
	}

	var offResp struct {
		Products []struct {
			ProductName string                 `json:"product_name"`
			Categories  string                 `json:"categories"`
			Nutriments  map[string]interface{} `json:"nutriments"`
		} `json:"products"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&offResp); err != nil {
		return domain.FoodInfoResponse{}, err
	}

	if len(offResp.Products) == 0 {
		return domain.FoodInfoResponse{
			Name:          foodName,
			Category:      "Unknown",
			ShelfLifeDays: estimateShelfLife(foodName),
		}, nil
	}

	product := offResp.Products[0]
	name := product.ProductName
	if name == "" {
		name = foodName
	}
	category := product.Categories
	if category == "" {
		category = "Unknown"
	}

	return domain.FoodInfoResponse{
		Name:          name,
		Category:      category,
		ShelfLifeDays: estimateShelfLife(product.Categories + " " + foodName),
		Nutriments:    product.Nutriments,
	}, nil
}

func estimateShelfLife(categoryOrName string) int {
	lower := strings.ToLower(categoryOrName)
	for _, entry := range shelfLifeTable {
		if strings.Contains(lower, entry.keyword) {
			return entry.days
		}
	}
	return defaultShelfLifeDays
}
