package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slidegenie/slidegenie-api/internal/domain"
	"github.com/slidegenie/slidegenie-api/internal/prompts"
)

// DefaultScoreThreshold is the minimum confidence score an AI-scored slide
// must reach to be accepted.
const DefaultScoreThreshold = 75

// scorerTemperature keeps scoring deterministic.
const scorerTemperature = 0.0

// RejectReason classifies why a slide failed the quality gate.
type RejectReason string

// Possible rejection reasons.
const (
	RejectNone     RejectReason = ""
	RejectDenyList RejectReason = "deny_list"
	RejectLowScore RejectReason = "low_score"
)

// Verdict is the typed outcome of one validation pass, letting callers
// enumerate attempt-by-attempt results deterministically.
type Verdict struct {
	Accepted bool
	Reason   RejectReason

	// Phrase is the matched deny-list phrase when Reason is RejectDenyList.
	Phrase string

	// Score is the confidence score when Tier B ran; -1 when it did not.
	Score int
}

// scoreSchema mirrors the JSON shape the scorer prompt requests.
type scoreSchema struct {
	ConfidenceScore *int `json:"confidence_score"`
}

// Validator is the two-tier quality gate for generated slides.
//
// Tier A is a static, case-insensitive deny-list match over the slide title
// and concatenated bullet text; any hit rejects without a network call.
// Tier B issues one additional LLM call rating the slide 0-100 and rejects
// below the threshold. A Tier B call failure resolves to acceptance
// (fail-open): a flaky secondary call must never stall the pipeline.
type Validator struct {
	client    LLMClient
	logger    *slog.Logger
	threshold int
}

// NewValidator creates a Validator. A non-positive threshold falls back to
// DefaultScoreThreshold.
func NewValidator(client LLMClient, logger *slog.Logger, threshold int) *Validator {
	if threshold <= 0 {
		threshold = DefaultScoreThreshold
	}
	return &Validator{client: client, logger: logger, threshold: threshold}
}

// CheckStatic runs Tier A only. It is exported separately so the fallback
// slide's self-consistency can be asserted without an LLM client.
func CheckStatic(slide domain.Slide) (string, bool) {
	text := slide.Title + " " + strings.Join(slide.BulletPoints, " ")
	return prompts.ContainsDenied(text)
}

// Validate gates one slide through both tiers and returns a typed verdict.
// It never returns an error: Tier A is local, and Tier B failures resolve
// to acceptance.
func (v *Validator) Validate(ctx context.Context, slide domain.Slide) Verdict {
	if phrase, hit := CheckStatic(slide); hit {
		v.logger.DebugContext(ctx, "slide rejected by deny-list",
			"slide", slide.Title,
			"phrase", phrase)
		return Verdict{Accepted: false, Reason: RejectDenyList, Phrase: phrase, Score: -1}
	}

	score, err := v.score(ctx, slide)
	if err != nil {
		// Fail-open: availability over precision for the secondary call.
		v.logger.WarnContext(ctx, "confidence scoring failed, accepting slide",
			"slide", slide.Title,
			"error", err)
		return Verdict{Accepted: true, Score: -1}
	}

	if score < v.threshold {
		v.logger.DebugContext(ctx, "slide rejected by confidence score",
			"slide", slide.Title,
			"score", score,
			"threshold", v.threshold)
		return Verdict{Accepted: false, Reason: RejectLowScore, Score: score}
	}

	return Verdict{Accepted: true, Score: score}
}

// score runs the Tier B LLM call and parses the confidence score.
func (v *Validator) score(ctx context.Context, slide domain.Slide) (int, error) {
	prompt, err := prompts.Scorer(prompts.ScorerData{
		Title:  slide.Title,
		Points: strings.Join(slide.BulletPoints, "; "),
	})
	if err != nil {
		return 0, err
	}

	reply, err := v.client.Complete(ctx, Request{
		System:       prompts.ScorerSystem,
		Prompt:       prompt,
		Temperature:  scorerTemperature,
		JSONResponse: true,
	})
	if err != nil {
		return 0, err
	}

	var schema scoreSchema
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &schema); err != nil {
		return 0, fmt.Errorf("%w: failed to parse score JSON: %v", ErrInvalidResponse, err)
	}
	if schema.ConfidenceScore == nil {
		return 0, fmt.Errorf("%w: score missing confidence_score", ErrInvalidResponse)
	}

	return *schema.ConfidenceScore, nil
}
