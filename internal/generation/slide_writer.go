package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/slidegenie/slidegenie-api/internal/domain"
	"github.com/slidegenie/slidegenie-api/internal/prompts"
)

// Sampling temperatures for slide expansion. The retry value is slightly
// higher to escape a degenerate completion.
const (
	slideTemperature      = 0.3
	slideRetryTemperature = 0.4
)

// slideSchema mirrors the JSON shape the slide prompt requests.
type slideSchema struct {
	Title        *string  `json:"title"`
	BulletPoints []string `json:"bullet_points"`
}

// SlideWriter is the second pipeline stage: it expands one planned section
// into a slide title plus bullet points. It is a pure generation step and
// performs no quality validation; that is the Validator's job.
type SlideWriter struct {
	client LLMClient
	logger *slog.Logger
}

// NewSlideWriter creates a SlideWriter using the given LLM client.
func NewSlideWriter(client LLMClient, logger *slog.Logger) *SlideWriter {
	return &SlideWriter{client: client, logger: logger}
}

// Expand generates slide content for the given section. domainRules is the
// pre-resolved ruleset string injected into the prompt. When isRetry is
// true the prompt is augmented with an explicit negative instruction
// reiterating the deny-list and the sampling temperature is raised.
func (w *SlideWriter) Expand(
	ctx context.Context,
	section domain.Section,
	domainRules string,
	isRetry bool,
) (domain.Slide, error) {
	if section.Title == "" {
		return domain.Slide{}, ErrEmptyInput
	}

	prompt, err := prompts.Slide(prompts.SlideData{
		SectionTitle: section.Title,
		CoverageHint: section.CoverageHint,
		DomainRules:  domainRules,
	})
	if err != nil {
		return domain.Slide{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	temperature := float32(slideTemperature)
	if isRetry {
		prompt += prompts.RetryInstruction
		temperature = slideRetryTemperature
	}

	w.logger.DebugContext(ctx, "requesting slide content",
		"section", section.Title,
		"is_retry", isRetry)

	reply, err := w.client.Complete(ctx, Request{
		System:       prompts.SlideSystem,
		Prompt:       prompt,
		Temperature:  temperature,
		JSONResponse: true,
	})
	if err != nil {
		return domain.Slide{}, err
	}

	return parseSlide(reply, section.Title)
}

// parseSlide validates the raw reply against the expected slide shape.
// A missing title falls back to the section title, since the prompt pins
// the title anyway. Bullet points beyond the layout limit are dropped
// deterministically so the result is always schema-valid.
func parseSlide(reply, sectionTitle string) (domain.Slide, error) {
	var schema slideSchema
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &schema); err != nil {
		return domain.Slide{}, fmt.Errorf("%w: failed to parse slide JSON: %v", ErrInvalidResponse, err)
	}

	if schema.BulletPoints == nil {
		return domain.Slide{}, fmt.Errorf("%w: slide missing bullet_points", ErrInvalidResponse)
	}

	title := sectionTitle
	if schema.Title != nil && *schema.Title != "" {
		title = *schema.Title
	}

	points := schema.BulletPoints
	if len(points) > domain.MaxBulletPoints {
		points = points[:domain.MaxBulletPoints]
	}

	return domain.Slide{Title: title, BulletPoints: points}, nil
}
