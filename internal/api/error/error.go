// Package error contains the API error body and its encoders.
package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/matt-dz/foodgram/internal/validation"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    ErrorCode `json:"code"`
	Status  int       `json:"status"`
	Message string    `json:"message"`
	ErrorID string    `json:"error_id"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%d): %s: %s", e.Code, e.Status, e.Field, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// Encode writes e with its status code.
func Encode(w http.ResponseWriter, e *Error) error {
	status := e.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		return fmt.Errorf("encoding error body: %w", err)
	}
	return nil
}

func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	return Encode(w, &Error{
		Code:    code,
		Status:  code.StatusCode(),
		Message: message,
		ErrorID: errorID,
	})
}

// EncodeFieldError reports a validation failure of a single request field.
func EncodeFieldError(w http.ResponseWriter, field, message, errorID string) error {
	return Encode(w, &Error{
		Code:    ValidationFailed,
		Status:  ValidationFailed.StatusCode(),
		Message: message,
		ErrorID: errorID,
		Field:   field,
	})
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}

// EncodeValidationError reports a domain validation failure.
func EncodeValidationError(w http.ResponseWriter, err *validation.Error, errorID string) error {
	return EncodeFieldError(w, err.Field, err.Message, errorID)
}

// EncodeDecodeError reports a request body that could not be read. Bodies cut
// off by http.MaxBytesReader are reported as too large.
func EncodeDecodeError(w http.ResponseWriter, err error, errorID string) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return EncodeError(w, RequestTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), errorID)
	}
	return EncodeError(w, BadRequest, "invalid request body", errorID)
}
