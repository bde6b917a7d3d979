// Package filter turns recipe and ingredient list query strings into
// storage filters.
package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/validation"
	"github.com/matt-dz/foodgram/internal/viewer"
)

const (
	ParamAuthor           = "author"
	ParamTags             = "tags"
	ParamIsFavorited      = "is_favorited"
	ParamIsInShoppingCart = "is_in_shopping_cart"
	ParamName             = "name"
)

// ParseRecipeQuery reads the recipe list filters from query. The favorite
// and cart flags only restrict the list for an authenticated viewer.
func ParseRecipeQuery(query url.Values, v viewer.Viewer) (database.RecipeFilter, error) {
	var f database.RecipeFilter

	if raw := strings.TrimSpace(query.Get(ParamAuthor)); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return database.RecipeFilter{}, validation.New(ParamAuthor, "Введите число.")
		}
		f.AuthorID = &id
	}

	for _, slug := range query[ParamTags] {
		if slug = strings.TrimSpace(slug); slug != "" {
			f.TagSlugs = append(f.TagSlugs, slug)
		}
	}

	favorited, err := parseFlag(query, ParamIsFavorited)
	if err != nil {
		return database.RecipeFilter{}, err
	}
	inCart, err := parseFlag(query, ParamIsInShoppingCart)
	if err != nil {
		return database.RecipeFilter{}, err
	}

	if userID, ok := viewer.UserID(v); ok {
		if favorited {
			f.FavoritedBy = &userID
		}
		if inCart {
			f.InCartOf = &userID
		}
	}
	return f, nil
}

func parseFlag(query url.Values, param string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(query.Get(param))) {
	case "", "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		return false, validation.New(param, "Введите правильное значение.")
	}
}

// IngredientNamePrefix returns the ingredient search term. Clients send the
// term escaped a second time on top of the query string encoding, so it is
// decoded once more. A term that does not decode is used as is.
func IngredientNamePrefix(query url.Values) string {
	raw := query.Get(ParamName)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return strings.TrimSpace(decoded)
}
