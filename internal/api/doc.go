// Package api implements the HTTP layer: the presentation generation
// endpoint, request validation, and the mapping of pipeline errors to safe,
// client-facing responses.
package api
