package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/slidegenie/slidegenie-api/internal/domain"
	"github.com/slidegenie/slidegenie-api/internal/prompts"
)

// plannerTemperature favors deterministic outline structure over creative
// variation.
const plannerTemperature = 0.2

// planSchema mirrors the JSON shape the planner prompt requests from the
// model. suggest_diagram arrives as a raw string because the model may emit
// "null" literally or invent values outside the enum.
type planSchema struct {
	Topic    *string `json:"topic"`
	Sections []struct {
		SectionTitle   string `json:"section_title"`
		WhatToCover    string `json:"what_to_cover"`
		SuggestDiagram string `json:"suggest_diagram"`
	} `json:"sections"`
}

// Planner is the first pipeline stage: it decomposes a topic into an
// ordered list of sections via a single low-temperature LLM call.
//
// The prompt requests exactly the desired section count, but the model is
// not trusted to comply; callers must tolerate a different count. A
// malformed reply is surfaced as ErrInvalidResponse without internal retry;
// retrying, if any, is the orchestrator's decision.
type Planner struct {
	client LLMClient
	logger *slog.Logger
}

// NewPlanner creates a Planner using the given LLM client.
func NewPlanner(client LLMClient, logger *slog.Logger) *Planner {
	return &Planner{client: client, logger: logger}
}

// Plan breaks topicText into an ordered outline of roughly slideCount
// sections.
func (p *Planner) Plan(ctx context.Context, topicText string, slideCount int) (*domain.ConceptPlan, error) {
	if topicText == "" {
		return nil, ErrEmptyInput
	}
	if slideCount < 1 {
		return nil, fmt.Errorf("%w: slide count must be positive", ErrGenerationFailed)
	}

	prompt, err := prompts.Planner(prompts.PlannerData{Topic: topicText, SlideCount: slideCount})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	p.logger.DebugContext(ctx, "requesting concept plan",
		"topic_length", len(topicText),
		"slide_count", slideCount)

	reply, err := p.client.Complete(ctx, Request{
		System:       prompts.PlannerSystem,
		Prompt:       prompt,
		Temperature:  plannerTemperature,
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	plan, err := parsePlan(reply)
	if err != nil {
		return nil, err
	}

	if len(plan.Sections) != slideCount {
		p.logger.WarnContext(ctx, "planner returned a different section count than requested",
			"requested", slideCount,
			"returned", len(plan.Sections))
	}

	p.logger.InfoContext(ctx, "concept plan generated",
		"topic", plan.Topic,
		"sections", len(plan.Sections))

	return plan, nil
}

// parsePlan validates the raw reply against the expected planner shape and
// converts it into a domain.ConceptPlan.
func parsePlan(reply string) (*domain.ConceptPlan, error) {
	var schema planSchema
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &schema); err != nil {
		return nil, fmt.Errorf("%w: failed to parse plan JSON: %v", ErrInvalidResponse, err)
	}

	if schema.Topic == nil || *schema.Topic == "" {
		return nil, fmt.Errorf("%w: plan missing topic", ErrInvalidResponse)
	}
	if schema.Sections == nil {
		return nil, fmt.Errorf("%w: plan missing sections", ErrInvalidResponse)
	}
	if len(schema.Sections) == 0 {
		return nil, fmt.Errorf("%w: plan has no sections", ErrInvalidResponse)
	}

	sections := make([]domain.Section, 0, len(schema.Sections))
	for i, s := range schema.Sections {
		if s.SectionTitle == "" {
			return nil, fmt.Errorf("%w: section %d missing title", ErrInvalidResponse, i)
		}
		sections = append(sections, domain.Section{
			Title:        s.SectionTitle,
			CoverageHint: s.WhatToCover,
			Visual:       parseVisualHint(s.SuggestDiagram),
		})
	}

	return &domain.ConceptPlan{Topic: *schema.Topic, Sections: sections}, nil
}

// parseVisualHint maps the model's suggest_diagram string onto the VisualHint
// enum. Unknown values and JSON-null spellings degrade to no hint rather
// than failing the plan.
func parseVisualHint(s string) domain.VisualHint {
	switch domain.VisualHint(s) {
	case domain.VisualFlowchart, domain.VisualBarChart, domain.VisualPieChart, domain.VisualTimeline:
		return domain.VisualHint(s)
	default:
		return domain.VisualNone
	}
}
