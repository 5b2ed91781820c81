package models

import (
	"time"

	"gorm.io/datatypes"
)

// Recipe difficulty ratings. Classification rule: easy is under 30 minutes
// with basic technique, medium is 30-60 minutes or intermediate technique,
// hard is over 60 minutes or advanced technique.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Recipe struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	UserID       uint           `gorm:"not null;index" json:"userId"`
	User         User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Ingredients  datatypes.JSON `gorm:"not null" json:"ingredients"`  // []PlanIngredient
	Instructions datatypes.JSON `gorm:"not null" json:"instructions"` // []string, ordered steps
	ImageURL     string         `json:"imageUrl"`
	PrepTime     int            `gorm:"not null" json:"prepTime"`
	Servings     int            `gorm:"not null" json:"servings"`
	Difficulty   string         `gorm:"not null" json:"difficulty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// FavoriteRecipe is the (user, recipe) bookmark join. The pair is unique;
// rows are hard-deleted on unfavorite so the pair can be favorited again.
type FavoriteRecipe struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"userId"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RecipeID  uint      `gorm:"not null;uniqueIndex:idx_favorite_user_recipe" json:"recipeId"`
	Recipe    Recipe    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
