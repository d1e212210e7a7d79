package domain

import (
	"time"

	"github.com/google/uuid"
)

// Layout limits enforced on assembled presentations.
const (
	// MaxSlides is the hard cap on the number of slides in a presentation.
	// Plans producing more sections are truncated, dropping trailing entries.
	MaxSlides = 15

	// MaxBulletPoints is the maximum number of bullet points a slide layout
	// can display.
	MaxBulletPoints = 5
)

// VisualHint is an optional suggestion from the planner that a section would
// benefit from a visual element. Rendering of visuals is handled by external
// collaborators; the hint is carried through unchanged.
type VisualHint string

// Supported visual hints.
const (
	VisualNone      VisualHint = ""
	VisualFlowchart VisualHint = "flowchart"
	VisualBarChart  VisualHint = "bar_chart"
	VisualPieChart  VisualHint = "pie_chart"
	VisualTimeline  VisualHint = "timeline"
)

// isValidVisualHint checks if the given hint is a known VisualHint.
func isValidVisualHint(h VisualHint) bool {
	switch h {
	case VisualNone, VisualFlowchart, VisualBarChart, VisualPieChart, VisualTimeline:
		return true
	default:
		return false
	}
}

// Section is a planned, named subdivision of a topic, not yet expanded into
// slide content. Sections are immutable once created and consumed exactly
// once by the slide writer.
type Section struct {
	Title        string     `json:"section_title"`
	CoverageHint string     `json:"what_to_cover"`
	Visual       VisualHint `json:"suggest_diagram,omitempty"`
}

// Validate checks if the Section has valid data.
func (s Section) Validate() error {
	if s.Title == "" {
		return ErrEmptySectionTitle
	}
	if !isValidVisualHint(s.Visual) {
		return ErrInvalidVisualHint
	}
	return nil
}

// ConceptPlan is the ordered outline produced by the planner: a topic plus
// the sections to expand. The section count is a soft target of the
// requested slide count; downstream code must tolerate fewer or more.
type ConceptPlan struct {
	Topic    string    `json:"topic"`
	Sections []Section `json:"sections"`
}

// Validate checks if the ConceptPlan has valid data.
func (p ConceptPlan) Validate() error {
	if p.Topic == "" {
		return ErrEmptyTopic
	}
	for _, s := range p.Sections {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Slide is the unit of final output: a title plus an ordered list of bullet
// points. Bullet order is display order; duplicates are allowed.
type Slide struct {
	Title        string   `json:"title"`
	BulletPoints []string `json:"bullet_points"`
	ImageURL     string   `json:"image_url,omitempty"`
}

// Validate checks if the Slide has valid data.
func (s Slide) Validate() error {
	if s.Title == "" {
		return ErrEmptySlideTitle
	}
	if len(s.BulletPoints) > MaxBulletPoints {
		return ErrTooManyBulletPoints
	}
	return nil
}

// PresentationStructure is the top-level output of the content pipeline.
// It is created fresh per request, held only in memory while the response
// is built, and never persisted.
type PresentationStructure struct {
	ID        uuid.UUID `json:"id"`
	Topic     string    `json:"topic"`
	Slides    []Slide   `json:"slides"`
	CreatedAt time.Time `json:"created_at"`
}

// NewPresentationStructure assembles a presentation from a topic and an
// ordered slice of slides. Slides beyond MaxSlides are dropped; the caller
// is responsible for logging the truncation. Returns an error if validation
// fails.
func NewPresentationStructure(topic string, slides []Slide) (*PresentationStructure, error) {
	if len(slides) > MaxSlides {
		slides = slides[:MaxSlides]
	}

	p := &PresentationStructure{
		ID:        uuid.New(),
		Topic:     topic,
		Slides:    slides,
		CreatedAt: time.Now().UTC(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the PresentationStructure has valid data.
func (p *PresentationStructure) Validate() error {
	if p.Topic == "" {
		return ErrEmptyTopic
	}
	if len(p.Slides) > MaxSlides {
		return ErrValidation
	}
	for _, s := range p.Slides {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
