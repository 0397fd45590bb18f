package exceptions

import (
	"errors"
	"strings"

	"barangay-health-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(fieldErr),
			Message: formatValidationMessage(fieldErr),
		})
	}
	return fieldErrors
}

func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientValidationFailed
	}

	firstErr := validationErrors[0]
	message := formatValidationMessage(firstErr)
	if constvars.TagsWithStandaloneMessage[firstErr.Tag()] {
		return message
	}
	return fieldPath(firstErr) + " " + message
}

func formatValidationMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if !constvars.TagsWithParams[tag] {
		return customMessage
	}

	switch tag {
	case "oneof":
		return strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
	case "required_if":
		params := strings.Fields(fieldErr.Param())
		for _, param := range params {
			customMessage = strings.Replace(customMessage, "%s", param, 1)
		}
		return customMessage
	default:
		return strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
}

// fieldPath drops the top-level struct name from the namespace,
// e.g. "CreateBaby.first_name" becomes "first_name".
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fieldErr.Field()
}
