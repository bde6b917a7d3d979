// Package recipe composes recipes from their tags, ingredients and image,
// and builds the per-viewer read model.
package recipe

import (
	"errors"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/user"
)

const MaxNameLength = 200

var ErrRecipeNotFound = errors.New("recipe not found")

type IngredientInput struct {
	ID     int64
	Amount int32
}

// Fields are the author-editable parts of a recipe. Image is a base64 data
// URI; on replace an empty Image keeps the current one.
type Fields struct {
	Name        string
	Text        string
	CookingTime int32
	Image       string
	TagIDs      []int64
	Ingredients []IngredientInput
}

type CreateParams struct {
	AuthorID int64
	Fields
}

type IngredientLine struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

// Detail is a recipe as a particular viewer sees it.
type Detail struct {
	ID               int64            `json:"id"`
	Tags             []database.Tag   `json:"tags"`
	Author           user.Profile     `json:"author"`
	Ingredients      []IngredientLine `json:"ingredients"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
	Name             string           `json:"name"`
	Image            string           `json:"image"`
	Text             string           `json:"text"`
	CookingTime      int32            `json:"cooking_time"`
}

// Summary is the short form used in favorite, cart and subscription responses.
type Summary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int32  `json:"cooking_time"`
}

func Summarize(r database.Recipe, files filestore.FileStore) Summary {
	return Summary{
		ID:          r.ID,
		Name:        r.Name,
		Image:       files.URL(r.Image),
		CookingTime: r.CookingTime,
	}
}
