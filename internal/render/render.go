// Package render turns an assembled presentation structure into a
// downloadable artifact. The current renderers emit a deterministic plain-text
// outline per output format; swapping in real binary encoders only requires a
// new Renderer implementation.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/slidegenie/slidegenie-api/internal/domain"
)

// Format identifies a supported output file type.
type Format string

const (
	FormatPPTX Format = "pptx"
	FormatPDF  Format = "pdf"
)

// ErrUnsupportedFormat is returned when a requested format has no renderer.
var ErrUnsupportedFormat = fmt.Errorf("unsupported output format")

// ParseFormat normalizes a user-supplied format string. An empty string
// defaults to pptx.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatPPTX):
		return FormatPPTX, nil
	case string(FormatPDF):
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Renderer encodes a presentation structure into one output format.
type Renderer interface {
	// Render produces the file bytes for the structure.
	Render(structure *domain.PresentationStructure) ([]byte, error)

	// ContentType is the MIME type of the rendered bytes.
	ContentType() string

	// Filename derives a download filename from the presentation topic.
	Filename(topic string) string
}

// New returns the renderer for the given format.
func New(format Format) (Renderer, error) {
	switch format {
	case FormatPPTX:
		return &outlineRenderer{
			format:      FormatPPTX,
			contentType: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		}, nil
	case FormatPDF:
		return &outlineRenderer{
			format:      FormatPDF,
			contentType: "application/pdf",
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// outlineRenderer emits a plain-text slide outline. Output depends only on
// the structure's content, never on time or identifiers, so identical decks
// render to identical bytes.
type outlineRenderer struct {
	format      Format
	contentType string
}

func (r *outlineRenderer) Render(structure *domain.PresentationStructure) ([]byte, error) {
	if structure == nil {
		return nil, fmt.Errorf("render: structure is nil")
	}
	if err := structure.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n", structure.Topic, strings.Repeat("=", len(structure.Topic)))
	for i, slide := range structure.Slides {
		fmt.Fprintf(&buf, "\nSlide %d: %s\n", i+1, slide.Title)
		for _, point := range slide.BulletPoints {
			fmt.Fprintf(&buf, "  - %s\n", point)
		}
		if slide.ImageURL != "" {
			fmt.Fprintf(&buf, "  [image: %s]\n", slide.ImageURL)
		}
	}
	return buf.Bytes(), nil
}

func (r *outlineRenderer) ContentType() string {
	return r.contentType
}

func (r *outlineRenderer) Filename(topic string) string {
	return fmt.Sprintf("%s.%s", slugify(topic), r.format)
}

// slugify reduces a topic to a safe filename stem.
func slugify(topic string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(topic) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "presentation"
	}
	if len(slug) > 60 {
		slug = strings.Trim(slug[:60], "-")
	}
	return slug
}
