// Package validator adapts go-playground/validator to echo's Validator
// interface and turns tag failures into the application's validation problem.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "backlot/internal/domain/errors"
	"backlot/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a configured validator instance.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the application's custom tags registered.
// Field names in messages come from the json tags, matching the wire shape.
func New() *CustomValidator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	// notblank rejects strings that are empty after trimming.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// genre accepts only the closed genre enumeration, stored by name.
	_ = validate.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return entity.Genre(fl.Field().String()).IsValid()
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. Failures come back as a single
// validation problem carrying one message per rejected field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldErr.Field(), describe(fieldErr)))
	}

	return domainerrors.NewValidation(messages)
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required", "notblank":
		if fieldErr.Kind() == reflect.String {
			return "must not be blank"
		}

		return "is required"
	case "genre":
		return fmt.Sprintf("must be a valid genre, got %q", fieldErr.Value())
	case "gte":
		return "must be greater than or equal to " + fieldErr.Param()
	case "lte":
		return "must be less than or equal to " + fieldErr.Param()
	case "min":
		return "must be at least " + fieldErr.Param() + " characters"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters"
	default:
		return "is invalid"
	}
}
