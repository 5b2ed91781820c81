package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/errs"
	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"
)

// OpenAIService delegates meal-plan and substitution generation to the
// OpenAI chat completions API. Replies are parsed and validated field by
// field before anything reaches a store; a reply that fails the contract is
// a generation error, never a partial persist. Calls are not retried since a
// retried completion would produce different content.
type OpenAIService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		client:  &http.Client{Timeout: 60 * time.Second},
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: "https://api.openai.com/v1",
		model:   "gpt-4o",
	}
}

type MealPlanPreferences struct {
	Dietary      []string `json:"dietary,omitempty"`
	CuisineTypes []string `json:"cuisineTypes,omitempty"`
	MealCount    int      `json:"mealCount"`
}

type MealPlanRequest struct {
	Ingredients []models.PlanIngredient `json:"ingredients"`
	Preferences *MealPlanPreferences    `json:"preferences,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *OpenAIService) GenerateMealPlan(ctx context.Context, req MealPlanRequest) (*models.WeeklyMealPlan, error) {
	ingredientsJSON, _ := json.Marshal(req.Ingredients)
	preferencesJSON, _ := json.Marshal(req.Preferences)

	prompt := fmt.Sprintf(`Generate a weekly meal plan based on these ingredients and preferences:
Available Ingredients: %s
Preferences: %s

Please provide a meal plan in JSON format with the following structure:
{
  "meals": [{
    "name": string,
    "ingredients": [{ "name": string, "quantity": number, "unit": string }],
    "instructions": string[],
    "prepTime": number,
    "servings": number,
    "difficulty": "easy" | "medium" | "hard"
  }],
  "shoppingList": [{ "name": string, "quantity": number, "unit": string }]
}

For each recipe:
- Rate difficulty as "easy" if it takes less than 30 minutes and uses basic techniques
- Rate as "medium" if it takes 30-60 minutes or requires intermediate techniques
- Rate as "hard" if it takes over 60 minutes or requires advanced techniques

The meals should be beginner-friendly and use common cooking techniques.
Include a shopping list for additional ingredients needed.`, ingredientsJSON, preferencesJSON)

	content, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan models.WeeklyMealPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, errs.Generation("provider returned malformed JSON", err)
	}

	if err := validateWeeklyMealPlan(&plan); err != nil {
		return nil, errs.Generation("provider reply failed validation", err)
	}
	return &plan, nil
}

func (s *OpenAIService) SuggestSubstitutions(ctx context.Context, recipe models.MealSuggestion, available []models.PlanIngredient) (*models.SubstitutionList, error) {
	recipeJSON, _ := json.Marshal(recipe)
	availableJSON, _ := json.Marshal(available)

	prompt := fmt.Sprintf(`Given this recipe and available ingredients, suggest substitutions for missing ingredients:
Recipe: %s
Available Ingredients: %s

Provide substitutions in JSON format:
{
  "substitutions": [{ "original": string, "substitute": string }]
}`, recipeJSON, availableJSON)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	content, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var list models.SubstitutionList
	if err := json.Unmarshal([]byte(content), &list); err != nil {
		return nil, errs.Generation("provider returned malformed JSON", err)
	}

	if list.Substitutions == nil {
		return nil, errs.Generation("provider reply missing substitutions", nil)
	}
	for i, sub := range list.Substitutions {
		if sub.Original == "" || sub.Substitute == "" {
			return nil, errs.Generation(fmt.Sprintf("substitution %d is incomplete", i), nil)
		}
	}
	return &list, nil
}

// complete sends one prompt and returns the first choice's content.
func (s *OpenAIService) complete(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", errs.Generation("OPENAI_API_KEY not set", nil)
	}

	body := chatRequest{
		Model:          s.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errs.Generation("provider call failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Generation("failed to read provider response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errs.Generation(fmt.Sprintf("provider returned status %d", resp.StatusCode), nil)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errs.Generation("provider returned malformed JSON", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errs.Generation("provider returned no choices", nil)
	}

	return stripJSONFences(parsed.Choices[0].Message.Content), nil
}

// stripJSONFences removes a markdown code fence if the model wrapped its JSON
// in one.
func stripJSONFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}
	return content
}

// validateWeeklyMealPlan checks the provider reply against the plan contract.
// The meal count itself is provider-controlled and not checked.
func validateWeeklyMealPlan(plan *models.WeeklyMealPlan) error {
	if plan.Meals == nil {
		return fmt.Errorf("missing meals")
	}
	if plan.ShoppingList == nil {
		return fmt.Errorf("missing shoppingList")
	}

	for i, meal := range plan.Meals {
		if meal.Name == "" {
			return fmt.Errorf("meal %d has no name", i)
		}
		if len(meal.Instructions) == 0 {
			return fmt.Errorf("meal %q has no instructions", meal.Name)
		}
		if meal.PrepTime <= 0 {
			return fmt.Errorf("meal %q has invalid prepTime", meal.Name)
		}
		if meal.Servings <= 0 {
			return fmt.Errorf("meal %q has invalid servings", meal.Name)
		}
		switch meal.Difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			return fmt.Errorf("meal %q has invalid difficulty %q", meal.Name, meal.Difficulty)
		}
		for j, ing := range meal.Ingredients {
			if ing.Name == "" || ing.Quantity <= 0 {
				return fmt.Errorf("meal %q ingredient %d is invalid", meal.Name, j)
			}
		}
	}

	for i, item := range plan.ShoppingList {
		if item.Name == "" || item.Quantity <= 0 {
			return fmt.Errorf("shopping list item %d is invalid", i)
		}
	}
	return nil
}
