package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/services"

	"github.com/gin-gonic/gin"
)

// PlanGenerator is the external generation provider. Tests swap in a stub.
type PlanGenerator interface {
	GenerateMealPlan(ctx context.Context, req services.MealPlanRequest) (*models.WeeklyMealPlan, error)
	SuggestSubstitutions(ctx context.Context, recipe models.MealSuggestion, available []models.PlanIngredient) (*models.SubstitutionList, error)
}

type MealPlanController struct {
	inventory *services.InventoryService
	mealPlans *services.MealPlanService
	generator PlanGenerator
	pdf       *services.PDFService
}

func NewMealPlanController(
	inventory *services.InventoryService,
	mealPlans *services.MealPlanService,
	generator PlanGenerator,
	pdf *services.PDFService,
) *MealPlanController {
	return &MealPlanController{
		inventory: inventory,
		mealPlans: mealPlans,
		generator: generator,
		pdf:       pdf,
	}
}

type GeneratePlanInput struct {
	Preferences *services.MealPlanPreferences `json:"preferences"`
}

// Generate builds a plan from the user's current inventory and replaces
// whatever plan they had. A failed generation leaves the old plan untouched.
func (mc *MealPlanController) Generate(c *gin.Context) {
	var input GeneratePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	ingredients, err := mc.inventory.List(userID)
	if err != nil {
		errs.Respond(c, err)
		return
	}

	req := services.MealPlanRequest{Preferences: input.Preferences}
	for _, ing := range ingredients {
		req.Ingredients = append(req.Ingredients, models.PlanIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	plan, err := mc.generator.GenerateMealPlan(c.Request.Context(), req)
	if err != nil {
		errs.Respond(c, err)
		return
	}

	saved, err := mc.mealPlans.ReplaceCurrent(userID, time.Now(), plan)
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (mc *MealPlanController) Current(c *gin.Context) {
	plan, err := mc.mealPlans.GetCurrent(currentUserID(c))
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, plan) // null when no plan exists yet
}

type SubstitutionsInput struct {
	Recipe models.MealSuggestion `json:"recipe" binding:"required"`
}

func (mc *MealPlanController) Substitutions(c *gin.Context) {
	var input SubstitutionsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	ingredients, err := mc.inventory.List(userID)
	if err != nil {
		errs.Respond(c, err)
		return
	}

	available := make([]models.PlanIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		available = append(available, models.PlanIngredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}

	subs, err := mc.generator.SuggestSubstitutions(c.Request.Context(), input.Recipe, available)
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (mc *MealPlanController) ExportPDF(c *gin.Context) {
	record, err := mc.mealPlans.GetCurrent(currentUserID(c))
	if err != nil {
		errs.Respond(c, err)
		return
	}
	if record == nil {
		errs.Respond(c, errs.NotFound("no meal plan found"))
		return
	}

	var plan models.WeeklyMealPlan
	if err := json.Unmarshal(record.Meals, &plan); err != nil {
		errs.Respond(c, err)
		return
	}

	data, err := mc.pdf.RenderMealPlan(&plan, record.WeekStart)
	if err != nil {
		errs.Respond(c, err)
		return
	}

	filename := fmt.Sprintf("meal-plan-%s.pdf", record.WeekStart.Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", data)
}
