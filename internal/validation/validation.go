// Package validation checks request inputs with go-playground/validator
// and reports failures as itemized field errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/errors"

	"github.com/go-playground/validator/v10"
)

// LocationBody marks a field read from the request body.
const LocationBody = "body"

// FieldError is one itemized validation failure.
type FieldError struct {
	Param    string `json:"param"`
	Msg      string `json:"msg"`
	Location string `json:"location"`
}

// Validator validates structs tagged with `validate` and reads
// per-field messages from the `msg` tag.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports JSON field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &Validator{validate: v}
}

// Struct validates s. On failure it returns ErrValidationFailed
// carrying []FieldError as details.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate input")
	}

	return domainerrors.ErrValidationFailed.WithDetails(toFieldErrors(s, validationErrs))
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

func toFieldErrors(s any, validationErrs validator.ValidationErrors) []FieldError {
	structType := reflect.TypeOf(s)
	for structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	fieldErrors := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{
			Param:    fe.Field(),
			Msg:      messageFor(structType, fe),
			Location: LocationBody,
		})
	}

	return fieldErrors
}

func messageFor(structType reflect.Type, fe validator.FieldError) string {
	if structType.Kind() == reflect.Struct {
		if field, ok := structType.FieldByName(fe.StructField()); ok {
			if msg := field.Tag.Get("msg"); msg != "" {
				return msg
			}
		}
	}

	return fmt.Sprintf("%s is invalid", fe.Field())
}
