package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeInput struct {
	Name         string                  `json:"name"`
	Ingredients  []models.PlanIngredient `json:"ingredients"`
	Instructions []string                `json:"instructions"`
	ImageURL     string                  `json:"imageUrl"`
	PrepTime     int                     `json:"prepTime"`
	Servings     int                     `json:"servings"`
	Difficulty   string                  `json:"difficulty"`
}

// FavoriteRecipeRow is a favorited recipe joined with its favorite id.
type FavoriteRecipeRow struct {
	ID           uint           `json:"id"`
	Name         string         `json:"name"`
	Ingredients  datatypes.JSON `json:"ingredients"`
	Instructions datatypes.JSON `json:"instructions"`
	ImageURL     string         `json:"imageUrl"`
	PrepTime     int            `json:"prepTime"`
	Servings     int            `json:"servings"`
	Difficulty   string         `json:"difficulty"`
	FavoriteID   uint           `json:"favoriteId"`
}

func (s *RecipeService) Create(userID uint, input RecipeInput) (*models.Recipe, error) {
	fields := map[string]string{}
	if input.Name == "" {
		fields["name"] = "name is required"
	}
	if input.PrepTime <= 0 {
		fields["prepTime"] = "prepTime must be positive"
	}
	if input.Servings <= 0 {
		fields["servings"] = "servings must be positive"
	}
	switch input.Difficulty {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		fields["difficulty"] = "difficulty must be easy, medium or hard"
	}
	if len(fields) > 0 {
		return nil, errs.Validation("invalid recipe", fields)
	}

	ingredients, err := json.Marshal(input.Ingredients)
	if err != nil {
		return nil, err
	}
	instructions, err := json.Marshal(input.Instructions)
	if err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		UserID:       userID,
		Name:         input.Name,
		Ingredients:  datatypes.JSON(ingredients),
		Instructions: datatypes.JSON(instructions),
		ImageURL:     input.ImageURL,
		PrepTime:     input.PrepTime,
		Servings:     input.Servings,
		Difficulty:   input.Difficulty,
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) ListOwned(userID uint) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	err := s.db.Where("user_id = ?", userID).Order("id").Find(&recipes).Error
	return recipes, err
}

// Favorite bookmarks a recipe for the user. The recipe must exist and belong
// to the user; favoriting twice is a conflict.
func (s *RecipeService) Favorite(userID, recipeID uint) error {
	var recipe models.Recipe
	err := s.db.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound("recipe not found")
	}
	if err != nil {
		return err
	}

	favorite := models.FavoriteRecipe{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	// the unique (user_id, recipe_id) index catches duplicates, including
	// two concurrent favorite calls
	if err := s.db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.Conflict("recipe already in favorites")
		}
		return err
	}
	return nil
}

// Unfavorite is idempotent: removing a favorite that does not exist is a
// no-op.
func (s *RecipeService) Unfavorite(userID, recipeID uint) error {
	return s.db.
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.FavoriteRecipe{}).Error
}

func (s *RecipeService) ListFavorites(userID uint) ([]FavoriteRecipeRow, error) {
	rows := []FavoriteRecipeRow{}
	err := s.db.
		Table("favorite_recipes fr").
		Joins("JOIN recipes r ON r.id = fr.recipe_id").
		Where("fr.user_id = ?", userID).
		Select("r.id, r.name, r.ingredients, r.instructions, r.image_url, r.prep_time, r.servings, r.difficulty, fr.id AS favorite_id").
		Order("fr.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
