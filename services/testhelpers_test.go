package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/config"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database named after the test, so
// parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := config.ConnectDB(config.DBConfig{Driver: "sqlite", DSN: dsn})
	require.NoError(t, err)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := models.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func validPlan(mealCount int) *models.WeeklyMealPlan {
	plan := &models.WeeklyMealPlan{
		Meals:        []models.MealSuggestion{},
		ShoppingList: []models.PlanIngredient{{Name: "Butter", Quantity: 1, Unit: "stick"}},
	}
	for i := 0; i < mealCount; i++ {
		plan.Meals = append(plan.Meals, models.MealSuggestion{
			Name:         fmt.Sprintf("Meal %d", i+1),
			Ingredients:  []models.PlanIngredient{{Name: "Egg", Quantity: 2, Unit: "pieces"}},
			Instructions: []string{"Cook it"},
			PrepTime:     20,
			Servings:     2,
			Difficulty:   models.DifficultyEasy,
		})
	}
	return plan
}
