// Package users contains handlers for the user resource.
package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/params"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/argon2id"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/pagination"
	"github.com/matt-dz/foodgram/internal/password"
	"github.com/matt-dz/foodgram/internal/subscription"
	"github.com/matt-dz/foodgram/internal/user"
	"github.com/matt-dz/foodgram/internal/validation"
	"github.com/matt-dz/foodgram/internal/viewer"
)

const (
	emailTaken      = "Пользователь с таким email уже существует."
	usernameTaken   = "Пользователь с таким username уже существует."
	wrongPassword   = "Неправильный пароль."
	userNotFound    = "Пользователь не найден."
	invalidPassword = "Введённый пароль слишком простой."
)

// decodeRequest reads a JSON body into dst and validates it, writing the
// error response itself. It reports whether the handler may continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	env.Logger.DebugContext(ctx, "Reading request body")
	r.Body = http.MaxBytesReader(w, r.Body, mJson.MaxBodySize)
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := mJson.DecodeJSON(dst, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeDecodeError(w, err, requestID)
		return false
	}
	if err := validation.Struct(dst); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		if vErr, ok := validation.As(err); ok {
			_ = apiError.EncodeValidationError(w, vErr, requestID)
			return false
		}
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return false
	}
	return true
}

func writeResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, status, body); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleListUsers godoc
//
//	@Summary	List users.
//	@Tags		User
//
//	@Produce	json
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//	@Success	200		{object}	pagination.Response[user.Profile]
//	@Failure	404		{object}	apiError.Error	"Invalid page"
//	@Router		/api/users/ [GET]
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	page, err := pagination.FromRequest(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Invalid page", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.PageNotFound, err.Error(), requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Counting users")
	count, err := env.Database.CountUsers(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to count users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Listing users")
	users, err := env.Database.ListUsers(ctx, database.ListUsersParams{
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	profiles, err := user.Profiles(ctx, env.Database, viewer.FromCtx(ctx), users)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to build profiles", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writeResponse(w, r, http.StatusOK, pagination.NewResponse(r, page, count, profiles))
}

// HandleCreateUser godoc
//
//	@Summary	Register a user.
//	@Tags		User
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateUserRequest	true	"Create User Request"
//	@Success	201		{object}	CreateUserResponse
//	@Failure	400		{object}	apiError.Error	"Validation failed"
//	@Router		/api/users/ [POST]
func HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	var request CreateUserRequest
	if !decodeRequest(w, r, &request) {
		return
	}

	env.Logger.DebugContext(ctx, "Validating username")
	if err := user.ValidateUsername(request.Username); err != nil {
		env.Logger.ErrorContext(ctx, "Invalid username", slog.Any("error", err))
		vErr, _ := validation.As(err)
		_ = apiError.EncodeValidationError(w, vErr, requestID)
		return
	}

	// Ensure password strength
	env.Logger.DebugContext(ctx, "Validating password")
	if err := password.ValidateUserPassword(request.Password); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate password", slog.Any("error", err))
		_ = apiError.EncodeFieldError(w, "password", invalidPassword, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Checking email availability")
	if _, err := env.Database.GetUserByEmail(ctx, request.Email); err == nil {
		_ = apiError.Encode(w, &apiError.Error{
			Code:    apiError.EmailConflict,
			Status:  apiError.EmailConflict.StatusCode(),
			Message: emailTaken,
			ErrorID: requestID,
			Field:   "email",
		})
		return
	} else if !errors.Is(err, database.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Failed to look up email", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Hash password
	env.Logger.DebugContext(ctx, "Hashing password")
	hash, err := argon2id.EncodeHash(request.Password, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Create user
	env.Logger.DebugContext(ctx, "Creating user")
	created, err := env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        request.Email,
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: hash,
		Role:         database.RoleUser,
	})
	if errors.Is(err, database.ErrUniqueViolation) {
		env.Logger.ErrorContext(ctx, "User already exists", slog.Any("error", err))
		_ = apiError.Encode(w, &apiError.Error{
			Code:    apiError.UsernameConflict,
			Status:  apiError.UsernameConflict.StatusCode(),
			Message: usernameTaken,
			ErrorID: requestID,
			Field:   "username",
		})
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writeResponse(w, r, http.StatusCreated, CreateUserResponse{
		Email:     created.Email,
		ID:        created.ID,
		Username:  created.Username,
		FirstName: created.FirstName,
		LastName:  created.LastName,
	})
}

// HandleMe godoc
//
//	@Summary	Current user profile.
//	@Tags		User
//
//	@Produce	json
//	@Security	TokenAuth
//	@Success	200	{object}	user.Profile
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Router		/api/users/me/ [GET]
func HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	userID, _ := viewer.UserID(viewer.FromCtx(ctx))
	env.Logger.DebugContext(ctx, "Retrieving current user")
	u, err := env.Database.GetUserByID(ctx, userID)
	if errors.Is(err, database.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Token owner no longer exists")
		_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writeResponse(w, r, http.StatusOK, user.NewProfile(u, false))
}

// HandleGetUser godoc
//
//	@Summary	User profile.
//	@Tags		User
//
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	user.Profile
//	@Failure	404	{object}	apiError.Error	"User not found"
//	@Router		/api/users/{id}/ [GET]
func HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	id, err := params.ID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.UserNotFound, userNotFound, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Retrieving user", slog.Int64("id", id))
	u, err := env.Database.GetUserByID(ctx, id)
	if errors.Is(err, database.ErrNoRows) {
		_ = apiError.EncodeError(w, apiError.UserNotFound, userNotFound, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	profiles, err := user.Profiles(ctx, env.Database, viewer.FromCtx(ctx), []database.User{u})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to build profile", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writeResponse(w, r, http.StatusOK, profiles[0])
}

// HandleSetPassword godoc
//
//	@Summary	Change the current user's password.
//	@Tags		User
//
//	@Accept		json
//	@Security	TokenAuth
//	@Param		request	body	SetPasswordRequest	true	"Set Password Request"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Validation failed"
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Router		/api/users/set_password/ [POST]
func HandleSetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	var request SetPasswordRequest
	if !decodeRequest(w, r, &request) {
		return
	}

	userID, _ := viewer.UserID(viewer.FromCtx(ctx))
	u, err := env.Database.GetUserByID(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Comparing passwords")
	match, err := argon2id.Compare(request.CurrentPassword, u.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode password hash", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !match {
		_ = apiError.Encode(w, &apiError.Error{
			Code:    apiError.InvalidPassword,
			Status:  apiError.InvalidPassword.StatusCode(),
			Message: wrongPassword,
			ErrorID: requestID,
			Field:   "current_password",
		})
		return
	}

	env.Logger.DebugContext(ctx, "Validating password")
	if err := password.ValidateUserPassword(request.NewPassword); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate password", slog.Any("error", err))
		_ = apiError.EncodeFieldError(w, "new_password", invalidPassword, requestID)
		return
	}

	hash, err := argon2id.EncodeHash(request.NewPassword, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	env.Logger.DebugContext(ctx, "Updating password")
	if err := env.Database.UpdateUserPassword(ctx, database.UpdateUserPasswordParams{
		ID:           userID,
		PasswordHash: hash,
	}); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to update password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleListSubscriptions godoc
//
//	@Summary	Authors the current user follows.
//	@Tags		Subscription
//
//	@Produce	json
//	@Security	TokenAuth
//	@Param		page			query		int	false	"Page number"
//	@Param		limit			query		int	false	"Page size"
//	@Param		recipes_limit	query		int	false	"Recipes per author"
//	@Success	200				{object}	pagination.Response[subscription.Subscribed]
//	@Failure	401				{object}	apiError.Error	"Unauthorized"
//	@Router		/api/users/subscriptions/ [GET]
func HandleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	page, err := pagination.FromRequest(r)
	if err != nil {
		_ = apiError.EncodeError(w, apiError.PageNotFound, err.Error(), requestID)
		return
	}
	recipesLimit, err := params.RecipesLimitFrom(r.URL.Query())
	if err != nil {
		vErr, _ := validation.As(err)
		_ = apiError.EncodeValidationError(w, vErr, requestID)
		return
	}

	userID, _ := viewer.UserID(viewer.FromCtx(ctx))
	env.Logger.DebugContext(ctx, "Listing subscriptions")
	subs, count, err := subscription.NewService(env.Database, env.FileStore).
		List(ctx, userID, page.Limit, page.Offset(), recipesLimit)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list subscriptions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	writeResponse(w, r, http.StatusOK, pagination.NewResponse(r, page, count, subs))
}

// HandleSubscribe godoc
//
//	@Summary	Follow an author.
//	@Tags		Subscription
//
//	@Produce	json
//	@Security	TokenAuth
//	@Param		id				path		int	true	"Author ID"
//	@Param		recipes_limit	query		int	false	"Recipes to embed"
//	@Success	201				{object}	subscription.Subscribed
//	@Failure	400				{object}	apiError.Error	"Already subscribed or self subscription"
//	@Failure	404				{object}	apiError.Error	"User not found"
//	@Router		/api/users/{id}/subscribe/ [POST]
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	authorID, err := params.ID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.UserNotFound, userNotFound, requestID)
		return
	}
	recipesLimit, err := params.RecipesLimitFrom(r.URL.Query())
	if err != nil {
		vErr, _ := validation.As(err)
		_ = apiError.EncodeValidationError(w, vErr, requestID)
		return
	}

	userID, _ := viewer.UserID(viewer.FromCtx(ctx))
	env.Logger.DebugContext(ctx, "Subscribing", slog.Int64("author-id", authorID))
	sub, err := subscription.NewService(env.Database, env.FileStore).Subscribe(ctx, userID, authorID, recipesLimit)
	env.Metrics.SubscriptionToggle("subscribe", outcome(err))
	if err != nil {
		encodeSubscriptionError(w, r, err)
		return
	}

	sub.IsSubscribed = true
	writeResponse(w, r, http.StatusCreated, sub)
}

// HandleUnsubscribe godoc
//
//	@Summary	Unfollow an author.
//	@Tags		Subscription
//
//	@Security	TokenAuth
//	@Param		id	path	int	true	"Author ID"
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not subscribed"
//	@Failure	404	{object}	apiError.Error	"User not found"
//	@Router		/api/users/{id}/subscribe/ [DELETE]
func HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	authorID, err := params.ID(r, "id")
	if err != nil {
		_ = apiError.EncodeError(w, apiError.UserNotFound, userNotFound, requestID)
		return
	}

	userID, _ := viewer.UserID(viewer.FromCtx(ctx))
	env.Logger.DebugContext(ctx, "Unsubscribing", slog.Int64("author-id", authorID))
	err = subscription.NewService(env.Database, env.FileStore).Unsubscribe(ctx, userID, authorID)
	env.Metrics.SubscriptionToggle("unsubscribe", outcome(err))
	if err != nil {
		encodeSubscriptionError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, subscription.ErrAlreadySubscribed):
		return "already_subscribed"
	case errors.Is(err, subscription.ErrNotSubscribed):
		return "not_subscribed"
	case errors.Is(err, subscription.ErrSelfSubscription):
		return "self"
	case errors.Is(err, subscription.ErrUserNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func encodeSubscriptionError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	switch {
	case errors.Is(err, subscription.ErrUserNotFound):
		_ = apiError.EncodeError(w, apiError.UserNotFound, userNotFound, requestID)
	case errors.Is(err, subscription.ErrSelfSubscription):
		_ = apiError.EncodeError(w, apiError.SelfSubscription, err.Error(), requestID)
	case errors.Is(err, subscription.ErrAlreadySubscribed):
		_ = apiError.EncodeError(w, apiError.AlreadySubscribed, err.Error(), requestID)
	case errors.Is(err, subscription.ErrNotSubscribed):
		_ = apiError.EncodeError(w, apiError.NotSubscribed, err.Error(), requestID)
	default:
		env.Logger.ErrorContext(ctx, "Subscription operation failed", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
	}
}
