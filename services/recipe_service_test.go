package services

import (
	"testing"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pancakeInput() RecipeInput {
	return RecipeInput{
		Name:         "Pancakes",
		Ingredients:  []models.PlanIngredient{{Name: "Flour", Quantity: 200, Unit: "g"}},
		Instructions: []string{"Mix", "Fry"},
		PrepTime:     20,
		Servings:     4,
		Difficulty:   models.DifficultyEasy,
	}
}

func TestRecipeCreateValidation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewRecipeService(db)

	input := pancakeInput()
	input.Name = ""
	input.Difficulty = "impossible"
	_, err := svc.Create(user.ID, input)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindValidation))
}

func TestFavoriteSequence(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewRecipeService(db)

	recipe, err := svc.Create(user.ID, pancakeInput())
	require.NoError(t, err)

	require.NoError(t, svc.Favorite(user.ID, recipe.ID))

	err = svc.Favorite(user.ID, recipe.ID)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindConflict))

	// unfavorite clears the conflict, and is idempotent
	require.NoError(t, svc.Unfavorite(user.ID, recipe.ID))
	require.NoError(t, svc.Unfavorite(user.ID, recipe.ID))

	require.NoError(t, svc.Favorite(user.ID, recipe.ID))
}

func TestFavoriteUnknownRecipe(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewRecipeService(db)

	err := svc.Favorite(user.ID, 9999)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestFavoriteOtherUsersRecipe(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	svc := NewRecipeService(db)

	recipe, err := svc.Create(alice.ID, pancakeInput())
	require.NoError(t, err)

	// supplying another user's id directly must behave as if it doesn't exist
	err = svc.Favorite(bob.ID, recipe.ID)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindNotFound))
}

func TestListFavoritesJoinsRecipe(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")
	svc := NewRecipeService(db)

	recipe, err := svc.Create(user.ID, pancakeInput())
	require.NoError(t, err)
	require.NoError(t, svc.Favorite(user.ID, recipe.ID))

	rows, err := svc.ListFavorites(user.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, recipe.ID, rows[0].ID)
	assert.Equal(t, "Pancakes", rows[0].Name)
	assert.Equal(t, models.DifficultyEasy, rows[0].Difficulty)
	assert.NotZero(t, rows[0].FavoriteID)
}

func TestListOwnedIsolation(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	svc := NewRecipeService(db)

	_, err := svc.Create(alice.ID, pancakeInput())
	require.NoError(t, err)

	bobRecipes, err := svc.ListOwned(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobRecipes)
}
