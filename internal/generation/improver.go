package generation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/slidegenie/slidegenie-api/internal/prompts"
)

// improverTemperature keeps rewrites close to the original intent.
const improverTemperature = 0.3

// PromptImprover is the optional pre-stage that rewrites weak or very short
// user input into a fuller topic description before planning.
//
// The stage is non-critical by design: on any failure (timeout, malformed
// reply, quota) it returns the original input unchanged and never aborts
// the pipeline.
type PromptImprover struct {
	client LLMClient
	logger *slog.Logger
}

// NewPromptImprover creates a PromptImprover using the given LLM client.
func NewPromptImprover(client LLMClient, logger *slog.Logger) *PromptImprover {
	return &PromptImprover{client: client, logger: logger}
}

// Improve rewrites rawText into a 20-40 word presentation request that
// preserves the original intent. The returned string is always usable as a
// topic; failures fall back to rawText.
func (i *PromptImprover) Improve(ctx context.Context, rawText string) string {
	prompt, err := prompts.Improver(prompts.ImproverData{UserInput: rawText})
	if err != nil {
		i.logger.WarnContext(ctx, "failed to build improver prompt, using raw input", "error", err)
		return rawText
	}

	reply, err := i.client.Complete(ctx, Request{
		System:      prompts.ImproverSystem,
		Prompt:      prompt,
		Temperature: improverTemperature,
	})
	if err != nil {
		i.logger.WarnContext(ctx, "prompt improvement failed, using raw input", "error", err)
		return rawText
	}

	improved := strings.TrimSpace(strings.Trim(strings.TrimSpace(reply), `"`))
	if improved == "" {
		i.logger.WarnContext(ctx, "prompt improvement returned empty text, using raw input")
		return rawText
	}

	i.logger.DebugContext(ctx, "prompt improved",
		"raw_length", len(rawText),
		"improved_length", len(improved))

	return improved
}
