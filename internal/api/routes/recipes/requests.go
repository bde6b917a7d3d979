package recipes

import "github.com/matt-dz/foodgram/internal/recipe"

type IngredientRequest struct {
	ID     int64 `json:"id"`
	Amount int32 `json:"amount"`
}

// RecipeRequest is the body of both create and update. On update an omitted
// image keeps the current one.
type RecipeRequest struct {
	Ingredients []IngredientRequest `json:"ingredients"`
	Tags        []int64             `json:"tags"`
	Image       string              `json:"image"`
	Name        string              `json:"name"`
	Text        string              `json:"text"`
	CookingTime int32               `json:"cooking_time"`
}

func (req RecipeRequest) fields() recipe.Fields {
	ingredients := make([]recipe.IngredientInput, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		ingredients = append(ingredients, recipe.IngredientInput{ID: in.ID, Amount: in.Amount})
	}
	return recipe.Fields{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		TagIDs:      req.Tags,
		Ingredients: ingredients,
	}
}
