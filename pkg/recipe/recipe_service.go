package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/entities"
	"Smart-Fridge-Manager/internal/utils"
	"Smart-Fridge-Manager/pkg/fridge"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	suggestionCount    = 10
	detailedCount      = 5
	wasteMinimizingTop = 5
	savedRecipeLimit   = 20
)

type (
	RecipeService interface {
		GetSuggestions(ctx context.Context, req domain.RecipeSuggestionRequest, userID string) (domain.RecipeSuggestionResponse, error)
		SaveSuggestion(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SavedRecipeResponse, error)
		GetSavedSuggestions(ctx context.Context, userID string) ([]domain.SavedRecipeResponse, error)
		DeleteSuggestion(ctx context.Context, id string, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		fridgeRepository fridge.FridgeRepository
		httpClient       *http.Client

		spoonacularURL string
		edamamURL      string
	}
)

func NewRecipeService(recipeRepository RecipeRepository, fridgeRepository fridge.FridgeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		fridgeRepository: fridgeRepository,
		httpClient:       &http.Client{Timeout: 30 * time.Second},
		spoonacularURL:   "https://api.spoonacular.com",
		edamamURL:        "https://api.edamam.com",
	}
}

func (s *recipeService) GetSuggestions(ctx context.Context, req domain.RecipeSuggestionRequest, userID string) (domain.RecipeSuggestionResponse, error) {
	ingredients := req.Ingredients

	if req.WasteMinimizing || len(ingredients) == 0 {
		// Prioritize the items expiring soonest
		items, err := s.fridgeRepository.GetActiveItems(ctx, userID)
		if err != nil {
			return domain.RecipeSuggestionResponse{}, err
		}

		ingredients = nil
		for i, item := range items {
			if i >= wasteMinimizingTop {
				break
			}
			ingredients = append(ingredients, item.Name)
		}
	}

	if len(ingredients) == 0 {
		return domain.RecipeSuggestionResponse{}, domain.ErrNoIngredients
	}

	recipes, err := s.findBySpoonacular(ctx, ingredients)
	if err != nil {
		log.Printf("spoonacular lookup: %v", err)

		recipes, err = s.findByEdamam(ctx, ingredients)
		if err != nil {
			return domain.RecipeSuggestionResponse{}, domain.ErrRecipeAPIFailed
		}

		return domain.RecipeSuggestionResponse{
			Recipes:     recipes,
			Ingredients: ingredients,
			Source:      "edamam",
		}, nil
	}

	return domain.RecipeSuggestionResponse{
		Recipes:     recipes,
		Ingredients: ingredients,
		Source:      "spoonacular",
	}, nil
}

func (s *recipeService) findBySpoonacular(ctx context.Context, ingredients []string) ([]domain.RecipeSuggestion, error) {
	apiKey := utils.GetConfig("SPOONACULAR_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_API_KEY not set")
	}

	params := url.Values{}
	params.Set("apiKey", apiKey)
	params.Set("ingredients", strings.Join(ingredients, ","))
	params.Set("number", fmt.Sprintf("%d", suggestionCount))
	params.Set("ranking", "2") // maximize used ingredients
	params.Set("ignorePantry", "false")

	reqURL := fmt.Sprintf("%s/recipes/findByIngredients?%s", s.spoonacularURL, params.Encode())

	var findResp []struct {
		ID              int    `json:"id"`
		Title           string `json:"title"`
		Image           string `json:"image"`
		UsedIngredients []struct {
			Name string `json:"name"`
		} `json:"usedIngredients"`
		MissedIngredients []struct {
			Name string `json:"name"`
		} `json:"missedIngredients"`
	}

	if err := s.getJSON(ctx, reqURL, &findResp); err != nil {
		return nil, err
	}

	recipes := make([]domain.RecipeSuggestion, 0, len(findResp))
	for i, found := range findResp {
		suggestion := domain.RecipeSuggestion{
			ID:       fmt.Sprintf("%d", found.ID),
			Title:    found.Title,
			ImageURL: found.Image,
		}
		for _, ing := range found.UsedIngredients {
			suggestion.UsedIngredients = append(suggestion.UsedIngredients, ing.Name)
		}
		for _, ing := range found.MissedIngredients {
			suggestion.MissedIngredients = append(suggestion.MissedIngredients, ing.Name)
		}

		if i < detailedCount {
			if details, err := s.getSpoonacularDetails(ctx, found.ID, apiKey); err == nil {
				suggestion.ReadyInMinutes = details.ReadyInMinutes
				suggestion.Servings = details.Servings
				suggestion.SourceURL = details.SourceURL
				suggestion.Summary = details.Summary
			}
		}

		recipes = append(recipes, suggestion)
	}

	return recipes, nil
}

type spoonacularDetails struct {
	ReadyInMinutes int    `json:"readyInMinutes"`
	Servings       int    `json:"servings"`
	SourceURL      string `json:"sourceUrl"`
	Summary        string `json:"summary"`
}

func (s *recipeService) getSpoonacularDetails(ctx context.Context, recipeID int, apiKey string) (spoonacularDetails, error) {
	reqURL := fmt.Sprintf("%s/recipes/%d/information?apiKey=%s&includeNutrition=true", s.spoonacularURL, recipeID, apiKey)

	var details spoonacularDetails
	if err := s.getJSON(ctx, reqURL, &details); err != nil {
		return spoonacularDetails{}, err
	}
	return details, nil
}

func (s *recipeService) findByEdamam(ctx context.Context, ingredients []string) ([]domain.RecipeSuggestion, error) {
	appID := utils.GetConfig("EDAMAM_APP_ID")
	appKey := utils.GetConfig("EDAMAM_APP_KEY")
	if appID == "" || appKey == "" {
		return nil, fmt.Errorf("edamam credentials not set")
	}

	params := url.Values{}
	params.Set("q", strings.Join(ingredients, " "))
	params.Set("app_id", appID)
	params.Set("app_key", appKey)
	params.Set("to", fmt.Sprintf("%d", suggestionCount))

	reqURL := fmt.Sprintf("%s/search?%s", s.edamamURL, params.Encode())

	var searchResp struct {
		Hits []struct {
			Recipe struct {
				URI   string  `json:"uri"`
				Label string  `json:"label"`
				Image string  `json:"image"`
				URL   string  `json:"url"`
				Yield float64 `json:"yield"`
			} `json:"recipe"`
		} `json:"hits"`
	}

	if err := s.getJSON(ctx, reqURL, &searchResp); err != nil {
		return nil, err
	}

	recipes := make([]domain.RecipeSuggestion, 0, len(searchResp.Hits))
	for _, hit := range searchResp.Hits {
		recipes = append(recipes, domain.RecipeSuggestion{
			ID:              hit.Recipe.URI,
			Title:           hit.Recipe.Label,
			ImageURL:        hit.Recipe.Image,
			UsedIngredients: ingredients,
			SourceURL:       hit.Recipe.URL,
			Servings:        int(hit.Recipe.Yield),
		})
	}

	return recipes, nil
}

func (s *recipeService) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("recipe API error: %s - %s", resp.Status, string(bodyBytes))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *recipeService) SaveSuggestion(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.SavedRecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.SavedRecipeResponse{}, domain.ErrParseUUID
	}

	matchedJSON, err := json.Marshal(req.IngredientsMatched)
	if err != nil {
		return domain.SavedRecipeResponse{}, err
	}

	suggestion := &entities.RecipeSuggestion{
		ID:                 uuid.New(),
		UserID:             userUUID,
		RecipeID:           req.RecipeID,
		RecipeName:         req.RecipeName,
		RecipeData:         req.RecipeData,
		IngredientsMatched: string(matchedJSON),
	}

	if err := s.recipeRepository.SaveSuggestion(ctx, suggestion); err != nil {
		return domain.SavedRecipeResponse{}, err
	}

	return toSavedRecipeResponse(suggestion), nil
}

func toSavedRecipeResponse(suggestion *entities.RecipeSuggestion) domain.SavedRecipeResponse {
	var matched []string
	_ = json.Unmarshal([]byte(suggestion.IngredientsMatched), &matched)

	return domain.SavedRecipeResponse{
		ID:                 suggestion.ID.String(),
		RecipeID:           suggestion.RecipeID,
		RecipeName:         suggestion.RecipeName,
		RecipeData:         suggestion.RecipeData,
		IngredientsMatched: matched,
		CreatedAt:          suggestion.CreatedAt,
	}
}

func (s *recipeService) GetSavedSuggestions(ctx context.Context, userID string) ([]domain.SavedRecipeResponse, error) {
	suggestions, err := s.recipeRepository.GetSavedSuggestions(ctx, userID, savedRecipeLimit)
	if err != nil {
		return nil, err
	}

	var response []domain.SavedRecipeResponse
	for _, suggestion := range suggestions {
		response = append(response, toSavedRecipeResponse(suggestion))
	}

	return response, nil
}

func (s *recipeService) DeleteSuggestion(ctx context.Context, id string, userID string) error {
	suggestion, err := s.recipeRepository.GetSuggestionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSavedRecipeNotFound
		}
		return err
	}

	if suggestion.UserID.String() != userID {
		return domain.ErrUnauthorizedRecipeAccess
	}

	return s.recipeRepository.DeleteSuggestion(ctx, id)
}
