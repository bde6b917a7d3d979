// Package validation turns request and domain validation failures into
// field-scoped errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is a validation failure attributed to a single request field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// As returns the *Error wrapped in err, if any.
func As(err error) (*Error, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Struct validates v's `validate` tags and reports the first failure as an
// *Error keyed by the field's JSON name.
func Struct(v any) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validating struct: %w", err)
	}
	fe := fieldErrs[0]
	return New(fieldPath(fe.Namespace()), message(fe))
}

// fieldPath drops the root struct name: "CreateRecipeRequest.ingredients[0].amount"
// becomes "ingredients[0].amount".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "Обязательное поле."
	case "email":
		return "Введите правильный адрес электронной почты."
	case "min", "gte":
		if isString {
			return fmt.Sprintf("Убедитесь, что это поле содержит не менее %s символов.", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return "Список не может быть пустым."
		}
		return fmt.Sprintf("Убедитесь, что это значение больше либо равно %s.", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("Убедитесь, что это поле содержит не более %s символов.", fe.Param())
		}
		return fmt.Sprintf("Убедитесь, что это значение меньше либо равно %s.", fe.Param())
	case "hexcolor":
		return "Введите цвет в формате #RRGGBB."
	default:
		return "Некорректное значение."
	}
}
