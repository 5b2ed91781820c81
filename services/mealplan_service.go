package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// ReplaceCurrent deletes the user's prior plans and inserts the new one in a
// single transaction, so GetCurrent never observes a half-replaced state.
func (s *MealPlanService) ReplaceCurrent(userID uint, weekStart time.Time, plan *models.WeeklyMealPlan) (*models.MealPlan, error) {
	meals, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	record := models.MealPlan{
		UserID:    userID,
		WeekStart: weekStart,
		Meals:     datatypes.JSON(meals),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.MealPlan{}).Error; err != nil {
			return err
		}
		return tx.Create(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetCurrent returns the most recent plan by weekStart, ties broken by the
// most recently inserted row. Nil when the user has no plan.
func (s *MealPlanService) GetCurrent(userID uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.
		Where("user_id = ?", userID).
		Order("week_start DESC, id DESC").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}
