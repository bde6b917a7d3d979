// Package tags contains handlers for the tag resource.
package tags

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gosimple/slug"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/validation"
)

const (
	tagNotFound = "Тег не найден."
	tagTaken    = "Тег с таким названием, цветом или слагом уже существует."
)

type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor,len=7"`
	Slug  string `json:"slug" validate:"omitempty,max=200"`
}

// HandleListTags godoc
//
//	@Summary	List tags.
//	@Tags		Tag
//
//	@Produce	json
//	@Success	200	{array}	database.Tag
//	@Router		/api/tags/ [GET]
func HandleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	env.Logger.DebugContext(ctx, "Listing tags")
	tags, err := env.Database.ListTags(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list tags", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if tags == nil {
		tags = []database.Tag{}
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, http.StatusOK, tags); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetTag godoc
//
//	@Summary	Get a tag.
//	@Tags		Tag
//
//	@Produce	json
//	@Param		id	path		int	true	"Tag ID"
//	@Success	200	{object}	database.Tag
//	@Failure	404	{object}	apiError.Error	"Tag not found"
//	@Router		/api/tags/{id}/ [GET]
func HandleGetTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.TagNotFound, tagNotFound, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving tag", slog.Int64("id", id))
	tag, err := env.Database.GetTag(ctx, id)
	if errors.Is(err, database.ErrNoRows) {
		_ = apiError.EncodeError(w, apiError.TagNotFound, tagNotFound, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, http.StatusOK, tag); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleCreateTag godoc
//
//	@Summary		Create a tag.
//	@Description	The slug is derived from the name when omitted.
//	@Tags			Tag
//
//	@Accept			json
//	@Produce		json
//	@Security		TokenAuth
//	@Param			request	body		CreateTagRequest	true	"Create Tag Request"
//	@Success		201		{object}	database.Tag
//	@Failure		400		{object}	apiError.Error	"Validation failed"
//	@Failure		403		{object}	apiError.Error	"Insufficient permissions"
//	@Router			/api/tags/ [POST]
func HandleCreateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	// Decode JSON
	var request CreateTagRequest
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

	tagSlug := strings.TrimSpace(request.Slug)
	if tagSlug == "" {
		tagSlug = slug.Make(request.Name)
	}
	if !slug.IsSlug(tagSlug) {
		_ = apiError.EncodeFieldError(w, "slug",
			"Значение должно состоять из латинских букв, цифр, знаков подчеркивания или дефиса.", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating tag", slog.String("slug", tagSlug))
	tag, err := env.Database.CreateTag(ctx, database.CreateTagParams{
		Name:  request.Name,
		Color: strings.ToUpper(request.Color),
		Slug:  tagSlug,
	})
	if errors.Is(err, database.ErrUniqueViolation) {
		_ = apiError.EncodeError(w, apiError.TagConflict, tagTaken, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, http.StatusCreated, tag); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
