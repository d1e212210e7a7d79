// Package prompts holds the versioned prompt template bank for the content
// pipeline. Templates are embedded at build time and parsed once, so the
// deny-list and the prompt wording can evolve independently of the stage
// code and be tested without any LLM call.
package prompts

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/slidegenie/slidegenie-api/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// System role instructions paired with each template.
const (
	PlannerSystem  = "You are a senior subject-matter strategist. Output valid JSON only."
	SlideSystem    = "You are a professional presentation architect. Output valid JSON only."
	ScorerSystem   = "You are a strict presentation quality evaluator. Output valid JSON only."
	ImproverSystem = "You are an expert prompt engineer."
)

// RetryInstruction is appended to the slide prompt on retry attempts to push
// the model away from the degenerate completion it produced the first time.
const RetryInstruction = "\n\n!! CRITICAL: Your previous output was too generic. " +
	"You MUST use hard facts, specific data, and unique insights. " +
	"AVOID ALL FILLER WORDS like 'Key Aspect', 'Overview', etc."

// DenyList is the fixed set of phrases considered generic filler. A slide
// whose title or bullet text contains any of them (case-insensitively) fails
// the static quality gate.
var DenyList = []string{
	"overview",
	"key aspect",
	"important detail",
	"implementation strategy",
	"optimization",
	"performance metrics",
	"placeholder",
	"supporting evidence",
	"generic concept",
	"learn more",
	"specific detail",
}

// domainRules maps each domain tag to the ruleset string injected into
// slide-writing prompts.
var domainRules = map[domain.Domain]string{
	domain.DomainMathematics: "Rules: Focus on definitions, formulas, and step-by-step logic. Include examples where applicable. No business language.",
	domain.DomainLaw:         "Rules: Include legal definitions and principles. Mention acts, sections, or doctrines if relevant. Maintain formal legal tone.",
	domain.DomainMedicine:    "Rules: Use medically accurate terminology. Focus on mechanisms, causes, symptoms, and prevention. Maintain neutral and ethical tone.",
	domain.DomainTechnical:   "Rules: Focus on hardware/software mechanisms, architecture, and precise data. Use formal terminology.",
	domain.DomainGeneral:     "Rules: Avoid heavy jargon. Use real-world analogies and clear, engaging descriptions.",
}

var (
	plannerTmpl  = mustParse("planner.tmpl")
	slideTmpl    = mustParse("slide.tmpl")
	scorerTmpl   = mustParse("scorer.tmpl")
	improverTmpl = mustParse("improver.tmpl")
)

func mustParse(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/"+name))
}

// PlannerData holds the placeholders for the planner prompt.
type PlannerData struct {
	Topic      string
	SlideCount int
}

// SlideData holds the placeholders for the slide-writer prompt.
type SlideData struct {
	SectionTitle string
	CoverageHint string
	DomainRules  string
}

// ScorerData holds the placeholders for the quality-scoring prompt.
type ScorerData struct {
	Title  string
	Points string
}

// ImproverData holds the placeholders for the prompt-improver prompt.
type ImproverData struct {
	UserInput string
}

// Planner renders the concept-planner prompt for the given topic and
// requested slide count.
func Planner(data PlannerData) (string, error) {
	return render(plannerTmpl, data)
}

// Slide renders the slide-writer prompt for one section.
func Slide(data SlideData) (string, error) {
	return render(slideTmpl, data)
}

// Scorer renders the quality-scoring prompt for one generated slide.
func Scorer(data ScorerData) (string, error) {
	return render(scorerTmpl, data)
}

// Improver renders the prompt-improver prompt for raw user input.
func Improver(data ImproverData) (string, error) {
	return render(improverTmpl, data)
}

// ResolveDomainRules returns the ruleset string for the given domain and
// audience. A technical audience on the general domain reuses the technical
// ruleset; every other combination follows the domain tag alone.
func ResolveDomainRules(d domain.Domain, a domain.Audience) string {
	if d == domain.DomainGeneral && a == domain.AudienceTechnical {
		d = domain.DomainTechnical
	}
	rules, ok := domainRules[d]
	if !ok {
		return domainRules[domain.DomainGeneral]
	}
	return rules
}

// ContainsDenied reports whether the given text contains any deny-list
// phrase, case-insensitively, and returns the first matched phrase.
func ContainsDenied(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, phrase := range DenyList {
		if strings.Contains(lower, phrase) {
			return phrase, true
		}
	}
	return "", false
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template %q: %w", t.Name(), err)
	}
	return buf.String(), nil
}
