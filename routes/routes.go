package routes

import (
	"time"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/controllers"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/middlewares"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers over the injected store and
// generation provider. Nothing here reaches for globals, so tests can build
// a router around an in-memory database and a stubbed provider.
func SetupRouter(db *gorm.DB, generator controllers.PlanGenerator, uploader controllers.ImageUploader) *gin.Engine {
	r := gin.Default()

	users := services.NewUserService(db)
	inventory := services.NewInventoryService(db)
	recipes := services.NewRecipeService(db)
	mealPlans := services.NewMealPlanService(db)
	pdf := services.NewPDFService()

	authCtl := controllers.NewAuthController(users)
	ingredientCtl := controllers.NewIngredientController(inventory)
	mealPlanCtl := controllers.NewMealPlanController(inventory, mealPlans, generator, pdf)
	recipeCtl := controllers.NewRecipeController(recipes, uploader)
	onboardingCtl := controllers.NewOnboardingController(users)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/ingredients", ingredientCtl.List)
		api.POST("/ingredients", ingredientCtl.Add)

		// Each generation call costs a provider round trip
		generationLimiter := middlewares.NewRateLimiter(10*time.Minute, 5)
		api.POST("/meal-plan", middlewares.RateLimit(generationLimiter), mealPlanCtl.Generate)
		api.GET("/meal-plan/current", mealPlanCtl.Current)
		api.GET("/meal-plan/pdf", mealPlanCtl.ExportPDF)
		api.POST("/recipe/substitutions", mealPlanCtl.Substitutions)

		api.POST("/recipes", recipeCtl.Create)
		api.GET("/recipes", recipeCtl.List)
		api.POST("/recipes/favorite/:recipeId", recipeCtl.Favorite)
		api.DELETE("/recipes/favorite/:recipeId", recipeCtl.Unfavorite)
		api.GET("/recipes/favorites", recipeCtl.ListFavorites)

		api.GET("/onboarding/status", onboardingCtl.Status)
		api.POST("/onboarding/complete", onboardingCtl.Complete)
	}

	return r
}
