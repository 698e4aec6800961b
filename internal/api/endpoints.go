package api

import (
	"context"
	"strings"
)

// FetchUser retrieves the full user record. Fields absent from the payload
// stay nil so callers can merge by overwrite.
func (c *Client) FetchUser(ctx context.Context) (UserPatch, error) {
	var payload UserPatch
	if err := c.Get(ctx, "/api/user", &payload); err != nil {
		return UserPatch{}, err
	}
	return payload, nil
}

// Generate asks the backend for a new recipe. The result has no id.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (Recipe, error) {
	if strings.TrimSpace(req.Ingredients) == "" {
		return Recipe{}, Validation("Please enter at least one ingredient.")
	}
	var recipe Recipe
	if err := c.Post(ctx, "/api/generate", req, &recipe); err != nil {
		return Recipe{}, err
	}
	return recipe, nil
}

// FindImage looks up an image URL for a recipe name.
func (c *Client) FindImage(ctx context.Context, query string) (string, error) {
	var payload imageResponse
	if err := c.Post(ctx, "/api/image", imageRequest{Query: query}, &payload); err != nil {
		return "", err
	}
	return payload.ImageURL, nil
}

// Modify asks the backend to transform recipe (healthier, spicy, ...).
func (c *Client) Modify(ctx context.Context, recipe Recipe, modType string) (Recipe, error) {
	var out Recipe
	if err := c.Post(ctx, "/api/modify", modifyRequest{Recipe: recipe, ModType: modType}, &out); err != nil {
		return Recipe{}, err
	}
	return out, nil
}

// Pairings retrieves beverage pairings keyed by category.
func (c *Client) Pairings(ctx context.Context, recipe Recipe) (Pairings, error) {
	var out Pairings
	if err := c.Post(ctx, "/api/pairings", recipe, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Swaps retrieves ordered substitutes for one ingredient of recipe.
func (c *Client) Swaps(ctx context.Context, recipe Recipe, ingredient string) ([]Suggestion, error) {
	if strings.TrimSpace(ingredient) == "" {
		return nil, Validation("Enter an ingredient to swap.")
	}
	var out []Suggestion
	if err := c.Post(ctx, "/api/swaps", swapsRequest{Recipe: recipe, Ingredient: ingredient}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveRecipe persists recipe in the cookbook and returns it with its new id.
func (c *Client) SaveRecipe(ctx context.Context, recipe Recipe) (Recipe, error) {
	var out Recipe
	if err := c.Post(ctx, "/api/cookbook", recipe, &out); err != nil {
		return Recipe{}, err
	}
	return out, nil
}

// DeleteRecipe removes a cookbook entry.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return Validation("Recipe id is required.")
	}
	var ack Ack
	return c.Delete(ctx, "/api/cookbook/"+id, &ack)
}

// SavePantry replaces the stored pantry with pantry.
func (c *Client) SavePantry(ctx context.Context, pantry []string) error {
	if pantry == nil {
		pantry = []string{}
	}
	var ack Ack
	return c.Post(ctx, "/api/pantry", pantryRequest{Pantry: pantry}, &ack)
}

// SavePlanner replaces the stored meal plan.
func (c *Client) SavePlanner(ctx context.Context, plan MealPlan) error {
	var ack Ack
	return c.Post(ctx, "/api/planner", plan, &ack)
}

// SavePreferences updates only the preference fields that are set.
func (c *Client) SavePreferences(ctx context.Context, prefs Preferences) error {
	var ack Ack
	return c.Post(ctx, "/api/preferences", prefs, &ack)
}
