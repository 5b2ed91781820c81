package models

import (
	"time"

	"gorm.io/datatypes"
)

// MealPlan is the single current plan for a user. Generating a new plan
// replaces the old row; the meals column holds a WeeklyMealPlan that was
// validated at the generation boundary.
type MealPlan struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"userId"`
	User      User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	WeekStart time.Time      `gorm:"not null" json:"weekStart"`
	Meals     datatypes.JSON `gorm:"not null" json:"meals"` // WeeklyMealPlan
	CreatedAt time.Time      `json:"createdAt"`
}

// PlanIngredient is one {name, quantity, unit} line inside a meal, a
// shopping list or a stored recipe.
type PlanIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type MealSuggestion struct {
	Name         string           `json:"name"`
	Ingredients  []PlanIngredient `json:"ingredients"`
	Instructions []string         `json:"instructions"`
	PrepTime     int              `json:"prepTime"`
	Servings     int              `json:"servings"`
	Difficulty   string           `json:"difficulty"`
}

// WeeklyMealPlan is the structured reply of the generation provider.
type WeeklyMealPlan struct {
	Meals        []MealSuggestion `json:"meals"`
	ShoppingList []PlanIngredient `json:"shoppingList"`
}

type Substitution struct {
	Original   string `json:"original"`
	Substitute string `json:"substitute"`
}

type SubstitutionList struct {
	Substitutions []Substitution `json:"substitutions"`
}
