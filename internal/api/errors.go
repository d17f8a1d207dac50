package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lexidrill/lexidrill-api/internal/domain"
	"github.com/lexidrill/lexidrill-api/internal/domain/progress"
	"github.com/lexidrill/lexidrill-api/internal/generation"
	"github.com/lexidrill/lexidrill-api/internal/service"
	"github.com/lexidrill/lexidrill-api/internal/speech"
	"github.com/lexidrill/lexidrill-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors: duplicates and the daily completion lock
	case store.IsDuplicateError(err),
		errors.Is(err, progress.ErrSubModeLocked):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidSubMode),
		errors.Is(err, progress.ErrEmptyAttempt),
		errors.Is(err, progress.ErrAnswerCountMismatch),
		errors.Is(err, service.ErrNoWords),
		errors.Is(err, speech.ErrEmptyText),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Disabled optional integrations
	case errors.Is(err, generation.ErrNotConfigured),
		errors.Is(err, speech.ErrNotConfigured):
		return http.StatusServiceUnavailable

	// Upstream LLM failures
	case errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, speech.ErrSynthesisFailed):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, store.ErrGradeRecordNotFound):
		return "No grades recorded for this category"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Conflict errors
	case errors.Is(err, store.ErrCategoryExists):
		return "Category already exists"

	case errors.Is(err, store.ErrWordExists):
		return "Word already exists in this category"

	case errors.Is(err, progress.ErrSubModeLocked):
		return "This drill direction was already completed today"

	// Bad request errors
	case errors.Is(err, progress.ErrAnswerCountMismatch):
		return "Answer count does not match the word list"

	case errors.Is(err, progress.ErrEmptyAttempt):
		return "Attempt contains no answers"

	case errors.Is(err, domain.ErrInvalidSubMode):
		return "Unknown drill direction"

	case errors.Is(err, service.ErrNoWords):
		return "Category has no words to drill"

	case errors.Is(err, speech.ErrEmptyText):
		return "Text cannot be empty"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid input"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Disabled optional integrations
	case errors.Is(err, generation.ErrNotConfigured):
		return "Suggestions are not available"

	case errors.Is(err, speech.ErrNotConfigured):
		return "Speech synthesis is not available"

	// Upstream LLM failures
	case errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrGenerationFailed):
		return "Failed to generate suggestions"

	case errors.Is(err, speech.ErrSynthesisFailed):
		return "Failed to synthesize audio"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'CreateWordRequest.Headword' Error:Field validation for 'Headword' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
