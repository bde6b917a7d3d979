// Package jwt provides functions for generating and validating JWTs
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTParams struct {
	Role   string
	UserID string
}

const (
	JWTDuration = 24 * time.Hour
	DefaultKID  = "1"
)

var ErrInvalidClaims = errors.New("invalid token claims")

func GenerateJWT(params JWTParams, secret []byte, version string) (string, error) {
	// Build token
	claims := jwt.MapClaims{
		"sub":  params.UserID,
		"role": params.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(JWTDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = version

	// Sign token
	signedKey, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signedKey, nil
}

func ValidateJWT(rawToken, version string, secret []byte) (*jwt.Token, error) {
	parserFunc := func(token *jwt.Token) (any, error) {
		kidVal, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing/invalid kid value")
		}

		if kidVal != version {
			return nil, fmt.Errorf("verifying KID value, value=%q", kidVal)
		}

		return secret, nil
	}

	// Parse the token
	token, err := jwt.Parse(rawToken, parserFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	return token, nil
}

// Subject extracts the user id and role claims of a validated token.
func Subject(token *jwt.Token) (userID int64, role string, err error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, "", fmt.Errorf("getting subject: %w", errors.Join(ErrInvalidClaims, err))
	}
	userID, err = strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parsing subject %q: %w", sub, ErrInvalidClaims)
	}
	role, ok = claims["role"].(string)
	if !ok {
		return 0, "", fmt.Errorf("missing role: %w", ErrInvalidClaims)
	}
	return userID, role, nil
}
