package services

import (
	"errors"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Register(username, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	// the unique index on username decides the winner under concurrent
	// registrations; no check-then-insert window
	user := models.User{Username: username, Password: hashed}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.Conflict("username already taken")
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks credentials and mints a session token.
func (s *UserService) Authenticate(username, password string) (string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return "", errs.Authentication("invalid username or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errs.Authentication("invalid username or password")
	}

	return utils.GenerateJWT(user.ID)
}

func (s *UserService) OnboardingStatus(userID uint) (bool, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return false, err
	}
	return user.HasCompletedOnboarding, nil
}

func (s *UserService) CompleteOnboarding(userID uint) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("has_completed_onboarding", true).Error
}
