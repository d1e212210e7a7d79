package generation

import (
	"context"
	"strings"
)

// Request describes a single chat completion issued to the language model:
// a system role instruction plus a user role prompt, with per-stage sampling
// temperature and an optional structured-output flag.
type Request struct {
	// System is the system role instruction for the call.
	System string

	// Prompt is the user role prompt, built from a template in the
	// prompts package.
	Prompt string

	// Temperature controls sampling randomness. The planner and scorer use
	// low values to favor deterministic structure; the slide writer raises
	// it slightly on retries to escape degenerate completions.
	Temperature float32

	// JSONResponse requests a JSON-object reply from the model.
	JSONResponse bool
}

// LLMClient is the boundary between the pipeline stages and the external
// model service. Implementations must be safe for use by concurrent
// goroutines; the pipeline fans out one call per section.
type LLMClient interface {
	// Complete issues the request and returns the raw reply text.
	Complete(ctx context.Context, req Request) (string, error)
}

// stripCodeFence removes a Markdown code fence wrapper from a model reply,
// if present. Models occasionally wrap JSON in ```json fences even when a
// structured reply was requested.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
