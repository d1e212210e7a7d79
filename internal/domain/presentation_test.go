package domain

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestNewPresentationStructure(t *testing.T) {
	t.Parallel()
	slides := []Slide{
		{Title: "The Turing Test", BulletPoints: []string{"Proposed by Alan Turing in 1950"}},
		{Title: "Modern Benchmarks", BulletPoints: []string{"MMLU measures multitask accuracy"}},
	}

	p, err := NewPresentationStructure("History of AI Evaluation", slides)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if p.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if p.Topic != "History of AI Evaluation" {
		t.Errorf("Expected topic to be preserved, got %q", p.Topic)
	}

	if len(p.Slides) != 2 {
		t.Errorf("Expected 2 slides, got %d", len(p.Slides))
	}

	if p.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Empty topic is rejected
	_, err = NewPresentationStructure("", slides)
	if err != ErrEmptyTopic {
		t.Errorf("Expected error %v, got %v", ErrEmptyTopic, err)
	}
}

func TestNewPresentationStructureTruncatesAtCap(t *testing.T) {
	t.Parallel()
	slides := make([]Slide, 0, 20)
	for i := 0; i < 20; i++ {
		slides = append(slides, Slide{
			Title:        fmt.Sprintf("Section %d", i+1),
			BulletPoints: []string{"First point", "Second point"},
		})
	}

	p, err := NewPresentationStructure("Oversized Deck", slides)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(p.Slides) != MaxSlides {
		t.Fatalf("Expected exactly %d slides after truncation, got %d", MaxSlides, len(p.Slides))
	}

	// Truncation drops trailing entries, preserving the leading order.
	for i, s := range p.Slides {
		want := fmt.Sprintf("Section %d", i+1)
		if s.Title != want {
			t.Errorf("Slide %d: expected title %q, got %q", i, want, s.Title)
		}
	}
}

func TestSlideValidate(t *testing.T) {
	t.Parallel()
	valid := Slide{Title: "Checksum Algorithms", BulletPoints: []string{"CRC32 detects burst errors"}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	missing := Slide{BulletPoints: []string{"orphaned point"}}
	if err := missing.Validate(); err != ErrEmptySlideTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptySlideTitle, err)
	}

	crowded := Slide{
		Title:        "Too Dense",
		BulletPoints: []string{"a", "b", "c", "d", "e", "f"},
	}
	if err := crowded.Validate(); err != ErrTooManyBulletPoints {
		t.Errorf("Expected error %v, got %v", ErrTooManyBulletPoints, err)
	}

	// Zero bullet points is allowed; a title-only slide is valid output.
	bare := Slide{Title: "Divider"}
	if err := bare.Validate(); err != nil {
		t.Errorf("Expected no error for title-only slide, got %v", err)
	}
}

func TestSectionValidate(t *testing.T) {
	t.Parallel()
	valid := Section{Title: "Photosynthesis Stages", CoverageHint: "Light and dark reactions", Visual: VisualFlowchart}
	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	missing := Section{CoverageHint: "no title"}
	if err := missing.Validate(); err != ErrEmptySectionTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptySectionTitle, err)
	}

	badHint := Section{Title: "Valid Title", Visual: VisualHint("hologram")}
	if err := badHint.Validate(); err != ErrInvalidVisualHint {
		t.Errorf("Expected error %v, got %v", ErrInvalidVisualHint, err)
	}
}

func TestConceptPlanValidate(t *testing.T) {
	t.Parallel()
	plan := ConceptPlan{
		Topic: "Container Networking",
		Sections: []Section{
			{Title: "Bridge Networks", CoverageHint: "Default docker0 bridge behavior"},
			{Title: "Overlay Networks", CoverageHint: "VXLAN encapsulation across hosts"},
		},
	}
	if err := plan.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	plan.Topic = ""
	if err := plan.Validate(); err != ErrEmptyTopic {
		t.Errorf("Expected error %v, got %v", ErrEmptyTopic, err)
	}
}

func TestParseDomain(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Domain
		wantErr bool
	}{
		{"", DomainGeneral, false},
		{"general", DomainGeneral, false},
		{"technical", DomainTechnical, false},
		{"mathematics", DomainMathematics, false},
		{"law", DomainLaw, false},
		{"medicine", DomainMedicine, false},
		{"astrology", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDomain(tc.input)
		if tc.wantErr {
			if err != ErrInvalidDomain {
				t.Errorf("ParseDomain(%q): expected ErrInvalidDomain, got %v", tc.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDomain(%q): unexpected error %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseDomain(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestParseAudience(t *testing.T) {
	t.Parallel()
	if a, err := ParseAudience(""); err != nil || a != AudienceGeneral {
		t.Errorf("Expected default audience %q, got %q (err %v)", AudienceGeneral, a, err)
	}
	if a, err := ParseAudience("technical"); err != nil || a != AudienceTechnical {
		t.Errorf("Expected audience %q, got %q (err %v)", AudienceTechnical, a, err)
	}
	if _, err := ParseAudience("executive"); err != ErrInvalidAudience {
		t.Errorf("Expected ErrInvalidAudience, got %v", err)
	}
}
