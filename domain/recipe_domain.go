package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetSuggestions = "recipe suggestions retrieved successfully"
	MessageSuccessSaveRecipe     = "recipe saved successfully"
	MessageSuccessGetSavedRecipe = "saved recipes retrieved successfully"
	MessageSuccessDeleteRecipe   = "saved recipe deleted successfully"

	MessageFailedGetSuggestions = "failed to retrieve recipe suggestions"
	MessageFailedSaveRecipe     = "failed to save recipe"
	MessageFailedGetSavedRecipe = "failed to retrieve saved recipes"
	MessageFailedDeleteRecipe   = "failed to delete saved recipe"

	ErrNoIngredients            = errors.New("no ingredients available for recipe suggestions")
	ErrRecipeAPIFailed          = errors.New("recipe API processing failed")
	ErrSavedRecipeNotFound      = errors.New("saved recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to saved recipe")
)

type (
	RecipeSuggestionRequest struct {
		Ingredients     []string `json:"ingredients" validate:"omitempty"`
		WasteMinimizing bool     `json:"waste_minimizing"`
	}

	RecipeSuggestion struct {
		ID                string   `json:"id"`
		Title             string   `json:"title"`
		ImageURL          string   `json:"image_url,omitempty"`
		UsedIngredients   []string `json:"used_ingredients"`
		MissedIngredients []string `json:"missed_ingredients"`
		ReadyInMinutes    int      `json:"ready_in_minutes,omitempty"`
		Servings          int      `json:"servings,omitempty"`
		SourceURL         string   `json:"source_url,omitempty"`
		Summary           string   `json:"summary,omitempty"`
	}

	RecipeSuggestionResponse struct {
		Recipes     []RecipeSuggestion `json:"recipes"`
		Ingredients []string           `json:"ingredients"`
		Source      string             `json:"source"` // "spoonacular" or "edamam"
	}

	SaveRecipeRequest struct {
		RecipeID           string   `json:"recipe_id" validate:"required"`
		RecipeName         string   `json:"recipe_name" validate:"required"`
		RecipeData         string   `json:"recipe_data" validate:"omitempty"`
		IngredientsMatched []string `json:"ingredients_matched" validate:"omitempty"`
	}

	SavedRecipeResponse struct {
		ID                 string    `json:"id"`
		RecipeID           string    `json:"recipe_id"`
		RecipeName         string    `json:"recipe_name"`
		RecipeData         string    `json:"recipe_data,omitempty"`
		IngredientsMatched []string  `json:"ingredients_matched"`
		CreatedAt          time.Time `json:"created_at"`
	}
)
