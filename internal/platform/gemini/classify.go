package gemini

import (
	"fmt"
	"strings"

	"github.com/slidegenie/slidegenie-api/internal/generation"
)

// classifyAPIError pattern-matches upstream error text onto the generation
// package's error taxonomy. The Gemini SDK does not expose typed errors for
// these conditions, so matching on the error string is the available
// mechanism; unknown errors degrade to ErrGenerationFailed.
func classifyAPIError(err error) error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "quota") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "billing"):
		return fmt.Errorf("%w: %v", generation.ErrQuotaExhausted, err)

	case strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "429") ||
		strings.Contains(msg, "too many requests"):
		return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)

	case strings.Contains(msg, "api key") ||
		strings.Contains(msg, "unauthenticated") ||
		strings.Contains(msg, "permission_denied") ||
		strings.Contains(msg, "401") ||
		strings.Contains(msg, "403"):
		return fmt.Errorf("%w: %v", generation.ErrInvalidCredentials, err)

	default:
		return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}
}
