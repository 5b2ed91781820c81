package controllers

import (
	"net/http"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/services"

	"github.com/gin-gonic/gin"
)

type OnboardingController struct {
	users *services.UserService
}

func NewOnboardingController(users *services.UserService) *OnboardingController {
	return &OnboardingController{users: users}
}

func (oc *OnboardingController) Status(c *gin.Context) {
	done, err := oc.users.OnboardingStatus(currentUserID(c))
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasCompletedOnboarding": done})
}

func (oc *OnboardingController) Complete(c *gin.Context) {
	if err := oc.users.CompleteOnboarding(currentUserID(c)); err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "onboarding completed"})
}
