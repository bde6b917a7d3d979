package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	RequestTooLarge         ErrorCode = "request_too_large"
	ValidationFailed        ErrorCode = "validation_failed"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	MissingCredentials      ErrorCode = "missing_credentials"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	WeakPassword            ErrorCode = "weak_password"
	InvalidPassword         ErrorCode = "invalid_password"
	EmailConflict           ErrorCode = "email_conflict"
	UsernameConflict        ErrorCode = "username_conflict"
	TagConflict             ErrorCode = "tag_conflict"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	RecipeNotOwned          ErrorCode = "recipe_not_owned"
	IngredientNotFound      ErrorCode = "ingredient_not_found"
	TagNotFound             ErrorCode = "tag_not_found"
	UserNotFound            ErrorCode = "user_not_found"
	PageNotFound            ErrorCode = "page_not_found"
	AlreadyExists           ErrorCode = "already_exists"
	NotPresent              ErrorCode = "not_present"
	SelfSubscription        ErrorCode = "self_subscription"
	AlreadySubscribed       ErrorCode = "already_subscribed"
	NotSubscribed           ErrorCode = "not_subscribed"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	RequestTooLarge:         http.StatusRequestEntityTooLarge,
	ValidationFailed:        http.StatusBadRequest,
	InvalidCredentials:      http.StatusBadRequest,
	MissingCredentials:      http.StatusUnauthorized,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	WeakPassword:            http.StatusBadRequest,
	InvalidPassword:         http.StatusBadRequest,
	EmailConflict:           http.StatusBadRequest,
	UsernameConflict:        http.StatusBadRequest,
	TagConflict:             http.StatusBadRequest,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	IngredientNotFound:      http.StatusNotFound,
	TagNotFound:             http.StatusNotFound,
	UserNotFound:            http.StatusNotFound,
	PageNotFound:            http.StatusNotFound,
	AlreadyExists:           http.StatusBadRequest,
	NotPresent:              http.StatusBadRequest,
	SelfSubscription:        http.StatusBadRequest,
	AlreadySubscribed:       http.StatusBadRequest,
	NotSubscribed:           http.StatusBadRequest,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
