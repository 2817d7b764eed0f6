package entities

import (
	"github.com/google/uuid"
)

type RecipeSuggestion struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	RecipeID           string    `json:"recipe_id"`
	RecipeName         string    `json:"recipe_name"`
	RecipeData         string    `json:"recipe_data" gorm:"type:text"`
	IngredientsMatched string    `json:"ingredients_matched" gorm:"type:text"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
