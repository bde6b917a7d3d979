// Package ingredients contains handlers for the ingredient resource.
package ingredients

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filter"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/validation"
)

const ingredientNotFound = "Ингредиент не найден."

type CreateIngredientRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

// HandleListIngredients godoc
//
//	@Summary		List ingredients.
//	@Description	Filters by case-insensitive name prefix when name is given.
//	@Tags			Ingredient
//
//	@Produce		json
//	@Param			name	query	string	false	"Name prefix"
//	@Success		200		{array}	database.Ingredient
//	@Router			/api/ingredients/ [GET]
func HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	prefix := filter.IngredientNamePrefix(r.URL.Query())
	env.Logger.DebugContext(ctx, "Searching ingredients", slog.String("prefix", prefix))
	ingredients, err := env.Database.SearchIngredients(ctx, prefix)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to search ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if ingredients == nil {
		ingredients = []database.Ingredient{}
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, http.StatusOK, ingredients); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetIngredient godoc
//
//	@Summary	Get an ingredient.
//	@Tags		Ingredient
//
//	@Produce	json
//	@Param		id	path		int	true	"Ingredient ID"
//	@Success	200	{object}	database.Ingredient
//	@Failure	404	{object}	apiError.Error	"Ingredient not found"
//	@Router		/api/ingredients/{id}/ [GET]
func HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.IngredientNotFound, ingredientNotFound, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving ingredient", slog.Int64("id", id))
	ingredient, err := env.Database.GetIngredient(ctx, id)
	if errors.Is(err, database.ErrNoRows) {
		_ = apiError.EncodeError(w, apiError.IngredientNotFound, ingredientNotFound, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve ingredient", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, http.StatusOK, ingredient); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleCreateIngredient godoc
//
//	@Summary	Create an ingredient.
//	@Tags		Ingredient
//
//	@Accept		json
//	@Produce	json
//	@Security	TokenAuth
//	@Param		request	body		CreateIngredientRequest	true	"Create Ingredient Request"
//	@Success	201		{object}	database.Ingredient
//	@Failure	400		{object}	apiError.Error	"Validation failed"
//	@Failure	403		{object}	apiError.Error	"Insufficient permissions"
//	@Router		/api/ingredients/ [POST]
func HandleCreateIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	// Decode JSON
	var request CreateIngredientRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	r.Body = http.MaxBytesReader(w, r.Body, mJson.MaxBodySize)
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := mJson.DecodeJSON(&request, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeDecodeError(w, err, requestID)
		return
	}
	if err := validation.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		if vErr, ok := validation.As(err); ok {
			_ = apiError.EncodeValidationError(w, vErr, requestID)
			return
		}
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating ingredient")
	ingredient, err := env.Database.CreateIngredient(ctx, database.CreateIngredientParams{
		Name:            request.Name,
		MeasurementUnit: request.MeasurementUnit,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create ingredient", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, http.StatusCreated, ingredient); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
