package recipe

import (
	"context"

	"Smart-Fridge-Manager/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		SaveSuggestion(ctx context.Context, suggestion *entities.RecipeSuggestion) error
		GetSuggestionByID(ctx context.Context, id string) (*entities.RecipeSuggestion, error)
		GetSavedSuggestions(ctx context.Context, userID string, limit int) ([]*entities.RecipeSuggestion, error)
		DeleteSuggestion(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) SaveSuggestion(ctx context.Context, suggestion *entities.RecipeSuggestion) error {
	return r.db.WithContext(ctx).Create(suggestion).Error
}

func (r *recipeRepository) GetSuggestionByID(ctx context.Context, id string) (*entities.RecipeSuggestion, error) {
	var suggestion entities.RecipeSuggestion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&suggestion).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *recipeRepository) GetSavedSuggestions(ctx context.Context, userID string, limit int) ([]*entities.RecipeSuggestion, error) {
	var suggestions []*entities.RecipeSuggestion

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&suggestions).Error; err != nil {
		return nil, err
	}

	return suggestions, nil
}

func (r *recipeRepository) DeleteSuggestion(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RecipeSuggestion{}).Error
}
