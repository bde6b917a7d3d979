// Package token contains utilities for http tokens.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/jwt"
)

const (
	AuthorizationHeader = "Authorization"

	// SchemeToken is the djoser style prefix; SchemeBearer is accepted as well.
	SchemeToken  = "Token"
	SchemeBearer = "Bearer"
)

var (
	ErrNoToken         = errors.New("no access token")
	ErrMalformedHeader = errors.New("malformed authorization header")
	ErrMissingSecret   = errors.New("app secret not configured")
)

// FromRequest returns the raw access token of r. ErrNoToken means the
// request is anonymous.
func FromRequest(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get(AuthorizationHeader))
	if header == "" {
		return "", ErrNoToken
	}

	scheme, value, found := strings.Cut(header, " ")
	if !found {
		return "", ErrMalformedHeader
	}
	if !strings.EqualFold(scheme, SchemeToken) && !strings.EqualFold(scheme, SchemeBearer) {
		return "", fmt.Errorf("unsupported scheme %q: %w", scheme, ErrMalformedHeader)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrMalformedHeader
	}
	return value, nil
}

func CreateAccessToken(params jwt.JWTParams, env *env.Env) (string, error) {
	secret, version := env.AppSecret()
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	token, err := jwt.GenerateJWT(params, secret, version)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}
