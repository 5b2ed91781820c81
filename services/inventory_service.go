package services

import (
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"gorm.io/gorm"
)

type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{db: db}
}

type IngredientInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// List returns the user's inventory. Every query is scoped by userID; no
// operation in this service can touch another user's rows.
func (s *InventoryService) List(userID uint) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	err := s.db.Where("user_id = ?", userID).Order("id").Find(&ingredients).Error
	return ingredients, err
}

func (s *InventoryService) Add(userID uint, input IngredientInput) (*models.Ingredient, error) {
	fields := map[string]string{}
	if input.Name == "" {
		fields["name"] = "name is required"
	}
	if input.Quantity <= 0 {
		fields["quantity"] = "quantity must be positive"
	}
	if input.Unit == "" {
		fields["unit"] = "unit is required"
	}
	if input.Category == "" {
		fields["category"] = "category is required"
	}
	if len(fields) > 0 {
		return nil, errs.Validation("invalid ingredient", fields)
	}

	ingredient := models.Ingredient{
		UserID:   userID,
		Name:     input.Name,
		Quantity: input.Quantity,
		Unit:     input.Unit,
		Category: input.Category,
	}
	if err := s.db.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}
