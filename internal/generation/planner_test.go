package generation_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidegenie/slidegenie-api/internal/domain"
	"github.com/slidegenie/slidegenie-api/internal/generation"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const validPlanJSON = `{
  "topic": "The History of Cartography",
  "sections": [
    {"section_title": "Ptolemy's Geographia", "what_to_cover": "Coordinate systems in antiquity.", "suggest_diagram": "timeline"},
    {"section_title": "Portolan Charts", "what_to_cover": "Compass-rose navigation in the Mediterranean.", "suggest_diagram": "null"},
    {"section_title": "The Mercator Projection", "what_to_cover": "Conformal projection trade-offs.", "suggest_diagram": "flowchart"}
  ]
}`

func TestPlannerPlan(t *testing.T) {
	t.Parallel()

	client := reply(validPlanJSON)
	planner := generation.NewPlanner(client, discardLogger())

	plan, err := planner.Plan(context.Background(), "history of maps", 3)
	require.NoError(t, err)

	assert.Equal(t, "The History of Cartography", plan.Topic)
	require.Len(t, plan.Sections, 3)
	assert.Equal(t, "Ptolemy's Geographia", plan.Sections[0].Title)
	assert.Equal(t, domain.VisualTimeline, plan.Sections[0].Visual)
	assert.Equal(t, domain.VisualNone, plan.Sections[1].Visual, `literal "null" should map to no hint`)

	req := client.lastRequest()
	assert.True(t, req.JSONResponse, "planner must request a structured reply")
	assert.InDelta(t, 0.2, req.Temperature, 0.001, "planner should sample at low temperature")
	assert.Contains(t, req.Prompt, "EXACTLY 3 sections")
}

func TestPlannerToleratesDifferentSectionCount(t *testing.T) {
	t.Parallel()

	// The model returned 3 sections when 5 were requested; the planner
	// surfaces the plan as-is — the count is a soft target.
	planner := generation.NewPlanner(reply(validPlanJSON), discardLogger())

	plan, err := planner.Plan(context.Background(), "history of maps", 5)
	require.NoError(t, err)
	assert.Len(t, plan.Sections, 3)
}

func TestPlannerStripsCodeFence(t *testing.T) {
	t.Parallel()

	planner := generation.NewPlanner(reply("```json\n"+validPlanJSON+"\n```"), discardLogger())

	plan, err := planner.Plan(context.Background(), "history of maps", 3)
	require.NoError(t, err)
	assert.Len(t, plan.Sections, 3)
}

func TestPlannerRejectsMalformedReplies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
	}{
		{"not JSON", "I'd be happy to help you plan a presentation!"},
		{"missing topic", `{"sections": [{"section_title": "A", "what_to_cover": "B"}]}`},
		{"empty topic", `{"topic": "", "sections": [{"section_title": "A"}]}`},
		{"missing sections", `{"topic": "Maps"}`},
		{"empty sections", `{"topic": "Maps", "sections": []}`},
		{"section missing title", `{"topic": "Maps", "sections": [{"what_to_cover": "B"}]}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			planner := generation.NewPlanner(reply(tc.reply), discardLogger())

			_, err := planner.Plan(context.Background(), "history of maps", 3)
			require.Error(t, err)
			assert.ErrorIs(t, err, generation.ErrInvalidResponse)
		})
	}
}

func TestPlannerPropagatesClientErrors(t *testing.T) {
	t.Parallel()

	// The planner does not retry internally; upstream errors surface
	// unmodified for the orchestrator to handle.
	planner := generation.NewPlanner(fail(generation.ErrRateLimited), discardLogger())

	_, err := planner.Plan(context.Background(), "history of maps", 3)
	assert.ErrorIs(t, err, generation.ErrRateLimited)
}

func TestPlannerRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	client := reply(validPlanJSON)
	planner := generation.NewPlanner(client, discardLogger())

	_, err := planner.Plan(context.Background(), "", 3)
	assert.ErrorIs(t, err, generation.ErrEmptyInput)
	assert.Zero(t, client.calls(), "no LLM call should be made for empty input")

	_, err = planner.Plan(context.Background(), "maps", 0)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}
