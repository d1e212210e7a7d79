// Package redact scrubs sensitive values from strings before they reach logs
// or error responses. The patterns target what this service actually handles:
// LLM provider API keys, bearer tokens, and key-bearing URLs that upstream
// client libraries tend to embed in their error messages.
package redact

import "regexp"

// Placeholders substituted for matched sensitive values.
const (
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

var (
	// Google API keys have a fixed shape and show up verbatim in some
	// transport-level errors.
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`)

	// Key-value credential assignments, e.g. "api_key=..." or "key: ...".
	assignedKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|apikey|token|secret|authorization)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Bearer tokens in echoed request headers.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}`)

	// Keys smuggled into URLs as query parameters.
	urlKeyRegex = regexp.MustCompile(`(?i)([?&](?:key|api[_-]?key|access_token)=)[^&\s"']+`)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{googleKeyRegex, RedactedKeyPlaceholder},
		{bearerRegex, RedactedTokenPlaceholder},
		{assignedKeyRegex, "$1$2" + RedactedCredentialPlaceholder},
		{urlKeyRegex, "$1" + RedactedKeyPlaceholder},
	}
)

// String redacts sensitive values from the input string.
func String(input string) string {
	if input == "" {
		return input
	}
	result := input
	for _, p := range patternPlaceholders {
		result = p.pattern.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts sensitive values from an error's message. A nil error yields
// an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
