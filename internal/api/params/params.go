// Package params reads path and query parameters shared by the routes.
package params

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/matt-dz/foodgram/internal/validation"
)

const RecipesLimit = "recipes_limit"

var ErrInvalidID = errors.New("invalid id")

// ID parses the positive integer path parameter key.
func ID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// RecipesLimitFrom reads recipes_limit. Absent means no cap, reported as 0.
func RecipesLimitFrom(query url.Values) (int32, error) {
	raw := query.Get(RecipesLimit)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		return 0, validation.New(RecipesLimit, "Введите правильное число.")
	}
	return int32(n), nil
}
