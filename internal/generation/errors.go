package generation

import "errors"

// Common errors returned by the generation package.
var (
	// ErrGenerationFailed is returned when content generation fails for any
	// general reason.
	ErrGenerationFailed = errors.New("failed to generate presentation content")

	// ErrInvalidResponse is returned when the LLM reply is not valid JSON or
	// is valid JSON missing required keys.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrQuotaExhausted is returned when the upstream provider reports an
	// exhausted quota or billing limit.
	ErrQuotaExhausted = errors.New("language model quota exhausted")

	// ErrRateLimited is returned when the upstream provider rejects the call
	// due to rate limiting.
	ErrRateLimited = errors.New("language model rate limit exceeded")

	// ErrInvalidCredentials is returned when the upstream provider rejects
	// the configured API credential.
	ErrInvalidCredentials = errors.New("invalid language model credentials")

	// ErrEmptyInput is returned when a stage is invoked with empty input text.
	ErrEmptyInput = errors.New("input text cannot be empty")
)
