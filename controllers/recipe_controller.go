package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/services"

	"github.com/gin-gonic/gin"
)

// ImageUploader stores a base64 image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, base64Data, prefix string) (string, error)
}

type RecipeController struct {
	recipes  *services.RecipeService
	uploader ImageUploader // nil when image storage is not configured
}

func NewRecipeController(recipes *services.RecipeService, uploader ImageUploader) *RecipeController {
	return &RecipeController{recipes: recipes, uploader: uploader}
}

type CreateRecipeInput struct {
	services.RecipeInput
	ImageBase64 string `json:"imageBase64"`
}

func (rc *RecipeController) Create(c *gin.Context) {
	var input CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ImageBase64 != "" && rc.uploader != nil {
		url, err := rc.uploader.Upload(c.Request.Context(), input.ImageBase64, "recipe-images")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
			return
		}
		input.ImageURL = url
	}

	recipe, err := rc.recipes.Create(currentUserID(c), input.RecipeInput)
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (rc *RecipeController) List(c *gin.Context) {
	recipes, err := rc.recipes.ListOwned(currentUserID(c))
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (rc *RecipeController) Favorite(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipeId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := rc.recipes.Favorite(currentUserID(c), uint(recipeID)); err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe added to favorites"})
}

func (rc *RecipeController) Unfavorite(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Param("recipeId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := rc.recipes.Unfavorite(currentUserID(c), uint(recipeID)); err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe removed from favorites"})
}

func (rc *RecipeController) ListFavorites(c *gin.Context) {
	favorites, err := rc.recipes.ListFavorites(currentUserID(c))
	if err != nil {
		errs.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}
