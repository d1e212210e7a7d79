package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/slidegenie/slidegenie-api/internal/generation"
	"github.com/slidegenie/slidegenie-api/internal/prompts"
)

// MockClient implements generation.LLMClient with deterministic canned
// replies and no network access. It is substituted for the real client when
// mock mode is enabled, and recognizes each pipeline stage by its system
// instruction.
type MockClient struct {
	logger *slog.Logger
}

// NewMockClient creates a MockClient.
func NewMockClient(logger *slog.Logger) *MockClient {
	return &MockClient{logger: logger}
}

// Patterns for recovering prompt parameters from the rendered templates.
var (
	sectionCountRe = regexp.MustCompile(`EXACTLY (\d+) sections`)
	quotedTopicRe  = regexp.MustCompile(`(?s)"""(.*?)"""`)
	sectionTitleRe = regexp.MustCompile(`SECTION TITLE:\n(.+)`)
)

// Complete returns a deterministic structured reply for the stage the
// request belongs to.
func (m *MockClient) Complete(_ context.Context, req generation.Request) (string, error) {
	switch req.System {
	case prompts.PlannerSystem:
		return m.mockPlan(req.Prompt)
	case prompts.SlideSystem:
		return m.mockSlide(req.Prompt)
	case prompts.ScorerSystem:
		return `{"confidence_score": 90}`, nil
	case prompts.ImproverSystem:
		return m.mockImprovement(req.Prompt), nil
	default:
		return "", fmt.Errorf("%w: unrecognized mock stage", generation.ErrInvalidResponse)
	}
}

// mockPlan derives a plan from the topic and section count embedded in the
// prompt. The topic is a deterministic derivation of the input text.
func (m *MockClient) mockPlan(prompt string) (string, error) {
	count := 3
	if match := sectionCountRe.FindStringSubmatch(prompt); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
			count = n
		}
	}

	topic := "Sample Topic"
	if match := quotedTopicRe.FindStringSubmatch(prompt); match != nil {
		topic = displayTopic(strings.TrimSpace(match[1]))
	}

	type mockSection struct {
		SectionTitle   string `json:"section_title"`
		WhatToCover    string `json:"what_to_cover"`
		SuggestDiagram string `json:"suggest_diagram"`
	}

	sections := make([]mockSection, 0, count)
	for i := 0; i < count; i++ {
		var s mockSection
		switch {
		case i == 0:
			s = mockSection{
				SectionTitle:   fmt.Sprintf("Introduction: %s", topic),
				WhatToCover:    "Define the subject and why it matters.",
				SuggestDiagram: "timeline",
			}
		case i == count-1 && count > 1:
			s = mockSection{
				SectionTitle: "Conclusion and Next Steps",
				WhatToCover:  "Summarize findings and outline follow-up actions.",
			}
		default:
			s = mockSection{
				SectionTitle: fmt.Sprintf("Topic Area %d: %s", i, topic),
				WhatToCover:  fmt.Sprintf("Cover subtopic %d in depth with concrete examples.", i),
			}
		}
		sections = append(sections, s)
	}

	out, err := json.Marshal(map[string]any{"topic": topic, "sections": sections})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// mockSlide echoes the section title from the prompt with fixed bullets.
// The bullet text is written to stay clear of the validator's deny-list so
// mock runs exercise the full accept path.
func (m *MockClient) mockSlide(prompt string) (string, error) {
	title := "Sample Slide"
	if match := sectionTitleRe.FindStringSubmatch(prompt); match != nil {
		title = strings.TrimSpace(match[1])
	}

	out, err := json.Marshal(map[string]any{
		"title": title,
		"bullet_points": []string{
			"Definition and historical origin of the concept",
			"Concrete, real-world usage example",
			"Measured impact with sample figures",
		},
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// mockImprovement expands the quoted user input into a fuller request.
func (m *MockClient) mockImprovement(prompt string) string {
	input := "the requested subject"
	if match := quotedTopicRe.FindStringSubmatch(prompt); match != nil {
		input = strings.TrimSpace(match[1])
	}
	return fmt.Sprintf(
		"Create a comprehensive and educational presentation on '%s', including its core definition, historical development, modern real-world applications, and contemporary challenges.",
		input)
}

// displayTopic derives a short display topic from raw input text.
func displayTopic(text string) string {
	const maxLen = 30
	if len(text) > maxLen {
		return text[:maxLen] + "..."
	}
	return text
}
