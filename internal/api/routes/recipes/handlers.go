// Package recipes contains handlers for the recipes endpoint.
package recipes

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filter"
	"github.com/matt-dz/foodgram/internal/image"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/membership"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/shoppinglist"
	"github.com/matt-dz/foodgram/internal/validation"
	"github.com/matt-dz/foodgram/internal/viewer"
)

const (
	recipeNotFound = "Рецепт не найден."
	recipeNotOwned = "Изменять и удалять рецепт может только его автор."
)

// maxRecipeBodySize fits a base64 encoded image of image.MaxSize plus the rest of the recipe.
var maxRecipeBodySize = int64(base64.StdEncoding.EncodedLen(image.MaxSize)) + mJson.MaxBodySize

func recipeService(env *env.Env) *recipe.Service {
	return recipe.NewService(env.Database, env.FileStore, env.Logger)
}

// encodeError maps a recipe or membership failure to its API error.
func encodeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	var stateErr *membership.StateError
	if vErr, ok := validation.As(err); ok {
		env.Logger.DebugContext(ctx, "Validation failed", slog.String("field", vErr.Field))
		_ = apiError.EncodeValidationError(w, vErr, requestID)
		return
	}
	switch {
	case errors.Is(err, recipe.ErrRecipeNotFound):
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFound, requestID)
	case errors.As(err, &stateErr) && errors.Is(err, membership.ErrAlreadyExists):
		_ = apiError.EncodeError(w, apiError.AlreadyExists, stateErr.Error(), requestID)
	case errors.As(err, &stateErr):
		_ = apiError.EncodeError(w, apiError.NotPresent, stateErr.Error(), requestID)
	default:
		env.Logger.ErrorContext(ctx, "Recipe operation failed", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
	}
}

func decodeRecipeRequest(w http.ResponseWriter, r *http.Request) (RecipeRequest, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	var request RecipeRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	r.Body = http.MaxBytesReader(w, r.Body, maxRecipeBodySize)
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := mJson.DecodeJSON(&request, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeDecodeError(w, err, requestID)
		return RecipeRequest{}, false
	}
	return request, true
}

// authorize loads recipe id and checks the viewer may modify it, writing
// the error response itself.
func authorize(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFound, requestID)
		return 0, false
	}

	env.Logger.DebugContext(ctx, "Checking recipe ownership", slog.Int64("recipe-id", id))
	current, err := env.Database.GetRecipe(ctx, id)
	if errors.Is(err, database.ErrNoRows) {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFound, requestID)
		return 0, false
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return 0, false
	}
	if !viewer.CanEdit(viewer.FromCtx(ctx), current.AuthorID) {
		env.Logger.ErrorContext(ctx, "User does not own recipe", slog.Int64("author-id", current.AuthorID))
		_ = apiError.EncodeError(w, apiError.RecipeNotOwned, recipeNotOwned, requestID)
		return 0, false
	}
	return id, true
}

func writeResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, status, body); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleListRecipes godoc
//
//	@Summary	List recipes.
//	@Tags		Recipes
//
//	@Produce	json
//	@Param		page				query		int		false	"Page number"
//	@Param		limit				query		int		false	"Page size"
//	@Param		author				query		int		false	"Author ID"
//	@Param		tags				query		[]string	false	"Tag slugs"	collectionFormat(multi)
//	@Param		is_favorited		query		int		false	"Only favorites (1/0)"
//	@Param		is_in_shopping_cart	query		int		false	"Only cart (1/0)"
//	@Success	200					{object}	pagination.Response[recipe.Detail]
//	@Failure	400					{object}	apiError.Error	"Invalid filter"
//	@Failure	404					{object}	apiError.Error	"Invalid page"
//	@Router		/api/recipes/ [GET]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)
	v := viewer.FromCtx(ctx)

	page, err := pagination.FromRequest(r)
	if err != nil {
		_ = apiError.EncodeError(w, apiError.PageNotFound, err.Error(), requestID)
		return
	}
	f, err := filter.ParseRecipeQuery(r.URL.Query(), v)
	if err != nil {
		encodeError(w, r, err)
		return
	}

	env.Logger.DebugContext(ctx, "Listing recipes")
	details, count, err := recipeService(env).List(ctx, v, f, page.Limit, page.Offset())
	if err != nil {
		encodeError(w, r, err)
		return
	}

	writeResponse(w, r, http.StatusOK, pagination.NewResponse(r, page, count, details))
}

// HandleCreateRecipe godoc
//
//	@Summary	Create a recipe.
//	@Tags		Recipes
//
//	@Accept		json
//	@Produce	json
//	@Security	TokenAuth
//	@Param		request	body		RecipeRequest	true	"Recipe"
//	@Success	201		{object}	recipe.Detail
//	@Failure	400		{object}	apiError.Error	"Validation failed"
//	@Failure	401		{object}	apiError.Error	"Unauthorized"
//	@Failure	413		{object}	apiError.Error	"Request body too large"
//	@Router		/api/recipes/ [POST]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	v := viewer.FromCtx(ctx)

	request, ok := decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	userID, _ := viewer.UserID(v)
	env.Logger.DebugContext(ctx, "Creating recipe")
	detail, err := recipeService(env).Create(ctx, v, recipe.CreateParams{
		AuthorID: userID,
		Fields:   request.fields(),
	})
	if err != nil {
		encodeError(w, r, err)
		return
	}
	env.Metrics.RecipeWrite("create")

	writeResponse(w, r, http.StatusCreated, detail)
}

// HandleGetRecipe godoc
//
//	@Summary	Get a recipe.
//	@Tags		Recipes
//
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	200	{object}	recipe.Detail
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Router		/api/recipes/{id}/ [GET]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFound, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving recipe", slog.Int64("recipe-id", id))
	detail, err := recipeService(env).Get(ctx, viewer.FromCtx(ctx), id)
	if err != nil {
		encodeError(w, r, err)
		return
	}

	writeResponse(w, r, http.StatusOK, detail)
}

// HandleUpdateRecipe godoc
//
//	@Summary		Update a recipe.
//	@Description	Replaces every field and the full tag and ingredient sets.
//	@Tags			Recipes
//
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			id		path		int				true	"Recipe ID"
//	@Param			request	body		RecipeRequest	true	"Recipe"
//	@Success		200		{object}	recipe.Detail
//	@Failure		400		{object}	apiError.Error	"Validation failed"
//	@Failure		403		{object}	apiError.Error	"Not the author"
//	@Failure		404		{object}	apiError.Error	"Recipe not found"
//	@Failure		413		{object}	apiError.Error	"Request body too large"
//	@Router			/api/recipes/{id}/ [PATCH]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	id, ok := authorize(w, r)
	if !ok {
		return
	}
	request, ok := decodeRecipeRequest(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Replacing recipe", slog.Int64("recipe-id", id))
	detail, err := recipeService(env).Replace(ctx, viewer.FromCtx(ctx), id, request.fields())
	if err != nil {
		encodeError(w, r, err)
		return
	}
	env.Metrics.RecipeWrite("replace")

	writeResponse(w, r, http.StatusOK, detail)
}

// HandleDeleteRecipe godoc
//
//	@Summary	Delete a recipe.
//	@Tags		Recipes
//
//	@Security	TokenAuth
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204
//	@Failure	403	{object}	apiError.Error	"Not the author"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Router		/api/recipes/{id}/ [DELETE]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	id, ok := authorize(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Deleting recipe", slog.Int64("recipe-id", id))
	if err := recipeService(env).Delete(ctx, id); err != nil {
		encodeError(w, r, err)
		return
	}
	env.Metrics.RecipeWrite("delete")

	w.WriteHeader(http.StatusNoContent)
}

func membershipOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, membership.ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, membership.ErrNotFound):
		return "not_present"
	case errors.Is(err, recipe.ErrRecipeNotFound):
		return "recipe_not_found"
	default:
		return "error"
	}
}

func addToList(kind database.Relation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)
		requestID := requestid.FromCtx(ctx)

		id, err := params.ID(r, "id")
		if err != nil {
			_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFound, requestID)
			return
		}

		userID, _ := viewer.UserID(viewer.FromCtx(ctx))
		env.Logger.DebugContext(ctx, "Adding recipe to list",
			slog.String("list", kind.String()), slog.Int64("recipe-id", id))
		summary, err := membership.NewService(env.Database, env.FileStore).Add(ctx, kind, userID, id)
		env.Metrics.MembershipToggle(kind.String(), "add", membershipOutcome(err))
		if err != nil {
			encodeError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusCreated, summary)
	}
}

func removeFromList(kind database.Relation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		env := env.EnvFromCtx(ctx)
		requestID := requestid.FromCtx(ctx)

		id, err := params.ID(r, "id")
		if err != nil {
			_ = apiError.EncodeError(w, apiError.RecipeNotFound, recipeNotFound, requestID)
			return
		}

		userID, _ := viewer.UserID(viewer.FromCtx(ctx))
		env.Logger.DebugContext(ctx, "Removing recipe from list",
			slog.String("list", kind.String()), slog.Int64("recipe-id", id))
		err = membership.NewService(env.Database, env.FileStore).Remove(ctx, kind, userID, id)
		env.Metrics.MembershipToggle(kind.String(), "remove", membershipOutcome(err))
		if err != nil {
			encodeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleAddFavorite godoc
//
//	@Summary	Add a recipe to favorites.
//	@Tags		Favorites
//
//	@Produce	json
//	@Security	TokenAuth
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	201	{object}	recipe.Summary
//	@Failure	400	{object}	apiError.Error	"Already in favorites"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Router		/api/recipes/{id}/favorite/ [POST]
func HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	addToList(database.RelationFavorite)(w, r)
}

// HandleRemoveFavorite godoc
//
//	@Summary	Remove a recipe from favorites.
//	@Tags		Favorites
//
//	@Security	TokenAuth
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not in favorites"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Router		/api/recipes/{id}/favorite/ [DELETE]
func HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	removeFromList(database.RelationFavorite)(w, r)
}

// HandleAddToCart godoc
//
//	@Summary	Add a recipe to the shopping cart.
//	@Tags		Shopping cart
//
//	@Produce	json
//	@Security	TokenAuth
//	@Param		id	path		int	true	"Recipe ID"
//	@Success	201	{object}	recipe.Summary
//	@Failure	400	{object}	apiError.Error	"Already in cart"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Router		/api/recipes/{id}/shopping_cart/ [POST]
func HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	addToList(database.RelationShoppingCart)(w, r)
}

// HandleRemoveFromCart godoc
//
//	@Summary	Remove a recipe from the shopping cart.
//	@Tags		Shopping cart
//
//	@Security	TokenAuth
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not in cart"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Router		/api/recipes/{id}/shopping_cart/ [DELETE]
func HandleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	removeFromList(database.RelationShoppingCart)(w, r)
}

// HandleDownloadShoppingCart godoc
//
//	@Summary		Download the shopping list.
//	@Description	Ingredients of every recipe in the cart, summed per name and unit.
//	@Tags			Shopping cart
//
//	@Produce		plain
//	@Security		TokenAuth
//	@Success		200	{string}	string	"Shopping list"
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Router			/api/recipes/download_shopping_cart/ [GET]
func HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	userID, _ := viewer.UserID(viewer.FromCtx(ctx))
	env.Logger.DebugContext(ctx, "Building shopping list")
	lines, err := shoppinglist.Build(ctx, env.Database, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to build shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	var body bytes.Buffer
	if err := shoppinglist.Render(&body, lines); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to render shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response", slog.Int("lines", len(lines)))
	w.Header().Set("Content-Type", shoppinglist.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", shoppinglist.Filename))
	if _, err := w.Write(body.Bytes()); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
