package controllers

import (
	"net/http"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/services"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	inventory *services.InventoryService
}

func NewIngredientController(inventory *services.InventoryService) *IngredientController {
	return &IngredientController{inventory: inventory}
}

func (ic *IngredientController) List(c *gin.Context) {
	ingredients, err := ic.inventory.List(currentUserID(c))
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func (ic *IngredientController) Add(c *gin.Context) {
	var input services.IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingredient, err := ic.inventory.Add(currentUserID(c), input)
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}
