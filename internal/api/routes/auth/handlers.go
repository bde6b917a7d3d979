// Package auth contains handlers for the auth endpoints
package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/argon2id"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/validation"
)

const invalidCredentials = "Невозможно войти с предоставленными учетными данными."

// HandleLogin godoc
//
//	@Summary	Obtain an auth token.
//	@Tags		Auth
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Login Request"
//	@Success	200		{object}	LoginResponse
//	@Failure	400		{object}	apiError.Error	"Invalid credentials"
//	@Failure	500		{object}	apiError.Error	"Internal server error"
//	@Router		/api/auth/token/login/ [POST]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.FromCtx(ctx)

	// Decode JSON
	var request LoginRequest
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

	// Retrieve user information
	env.Logger.DebugContext(ctx, "Retrieving user information")
	user, err := env.Database.GetUserByEmail(ctx, request.Email)
	if errors.Is(err, database.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "User with email does not exist", slog.String("email", request.Email))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, invalidCredentials, requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user information", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Comparing passwords
	env.Logger.DebugContext(ctx, "Comparing passwords")
	match, err := argon2id.Compare(request.Password, user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode password hash", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !match {
		env.Logger.ErrorContext(ctx, "Given password is incorrect")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, invalidCredentials, requestID)
		return
	}

	if argon2id.NeedsRehash(user.PasswordHash, argon2id.DefaultParams) {
		rehash(r, user.ID, request.Password)
	}

	// Create access token
	env.Logger.DebugContext(ctx, "Generating access token")
	accessToken, err := token.CreateAccessToken(jwt.JWTParams{
		Role:   role.DBToRole(user.Role).String(),
		UserID: strconv.FormatInt(user.ID, 10),
	}, env)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Write response
	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, http.StatusOK, LoginResponse{AuthToken: accessToken}); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleLogout godoc
//
//	@Summary		Discard an auth token.
//	@Description	Tokens are stateless; the client drops its copy.
//	@Tags			Auth
//
//	@Security		TokenAuth
//	@Success		204
//	@Failure		401	{object}	apiError.Error	"Unauthorized"
//	@Router			/api/auth/token/logout/ [POST]
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	env.Logger.DebugContext(ctx, "Logging out")
	w.WriteHeader(http.StatusNoContent)
}

// rehash upgrades a stored hash to the current parameters. Failure leaves the
// old hash in place and does not fail the login.
func rehash(r *http.Request, userID int64, password string) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	env.Logger.DebugContext(ctx, "Upgrading password hash")
	hash, err := argon2id.EncodeHash(password, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		return
	}
	if err := env.Database.UpdateUserPassword(ctx, database.UpdateUserPasswordParams{
		ID:           userID,
		PasswordHash: hash,
	}); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to store upgraded password hash", slog.Any("error", err))
	}
}
