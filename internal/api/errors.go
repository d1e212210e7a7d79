package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/slidegenie/slidegenie-api/internal/domain"
	"github.com/slidegenie/slidegenie-api/internal/generation"
	"github.com/slidegenie/slidegenie-api/internal/render"
)

// MapErrorToStatusCode maps pipeline errors to HTTP status codes. Upstream
// provider failures are distinguished so clients can tell a retryable outage
// from a bad request.
func MapErrorToStatusCode(err error) int {
	switch {
	// Provider capacity and throttling
	case errors.Is(err, generation.ErrQuotaExhausted):
		return http.StatusServiceUnavailable

	case errors.Is(err, generation.ErrRateLimited):
		return http.StatusTooManyRequests

	// Provider credentials
	case errors.Is(err, generation.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Bad request errors
	case errors.Is(err, generation.ErrEmptyInput),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDomain),
		errors.Is(err, domain.ErrInvalidAudience),
		errors.Is(err, render.ErrUnsupportedFormat):
		return http.StatusBadRequest

	// Default: internal server error (includes malformed model replies)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the error.
// Raw error strings never reach clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrQuotaExhausted):
		return "Generation capacity is temporarily exhausted, please try again later"

	case errors.Is(err, generation.ErrRateLimited):
		return "Too many requests, please slow down"

	case errors.Is(err, generation.ErrInvalidCredentials):
		return "Generation service credentials are not valid"

	case errors.Is(err, generation.ErrEmptyInput):
		return "Presentation text must not be empty"

	case errors.Is(err, domain.ErrInvalidDomain):
		return "Unknown knowledge domain"

	case errors.Is(err, domain.ErrInvalidAudience):
		return "Unknown audience level"

	case errors.Is(err, render.ErrUnsupportedFormat):
		return "Unsupported output format"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid presentation data"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The generation service returned an unusable reply"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError reduces a struct-validation error to a
// user-friendly message without echoing internal field paths.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'GeneratePresentationRequest.Text' Error:Field
		// validation for 'Text' failed on the 'max' tag"
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

// getValidationTagMessage maps validation tags to user-friendly fragments.
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too small"
	case "max":
		return "too large"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
