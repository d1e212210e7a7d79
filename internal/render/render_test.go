package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidegenie/slidegenie-api/internal/domain"
	"github.com/slidegenie/slidegenie-api/internal/render"
)

func sampleStructure(t *testing.T) *domain.PresentationStructure {
	t.Helper()
	structure, err := domain.NewPresentationStructure("The Water Cycle", []domain.Slide{
		{
			Title:        "Evaporation",
			BulletPoints: []string{"Solar energy drives evaporation", "Oceans supply most vapor"},
		},
		{
			Title:        "Condensation",
			BulletPoints: []string{"Vapor cools into droplets"},
			ImageURL:     "https://example.test/clouds.png",
		},
	})
	require.NoError(t, err)
	return structure
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    render.Format
		wantErr bool
	}{
		{input: "pptx", want: render.FormatPPTX},
		{input: "PDF", want: render.FormatPDF},
		{input: "  pdf  ", want: render.FormatPDF},
		{input: "", want: render.FormatPPTX},
		{input: "docx", wantErr: true},
	}

	for _, tc := range tests {
		got, err := render.ParseFormat(tc.input)
		if tc.wantErr {
			assert.ErrorIs(t, err, render.ErrUnsupportedFormat, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestOutlineRendererIsDeterministic(t *testing.T) {
	t.Parallel()

	r, err := render.New(render.FormatPPTX)
	require.NoError(t, err)

	first, err := r.Render(sampleStructure(t))
	require.NoError(t, err)
	second, err := r.Render(sampleStructure(t))
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical structures must render identically")
	assert.Contains(t, string(first), "The Water Cycle")
	assert.Contains(t, string(first), "Slide 1: Evaporation")
	assert.Contains(t, string(first), "- Vapor cools into droplets")
	assert.Contains(t, string(first), "[image: https://example.test/clouds.png]")
}

func TestRendererMetadata(t *testing.T) {
	t.Parallel()

	pptx, err := render.New(render.FormatPPTX)
	require.NoError(t, err)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		pptx.ContentType())
	assert.Equal(t, "the-water-cycle.pptx", pptx.Filename("The Water Cycle"))

	pdf, err := render.New(render.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType())
	assert.Equal(t, "quantum-entanglement-101.pdf", pdf.Filename("Quantum Entanglement: 101!"))
	assert.Equal(t, "presentation.pdf", pdf.Filename("???"))
}

func TestRenderRejectsInvalidStructure(t *testing.T) {
	t.Parallel()

	r, err := render.New(render.FormatPDF)
	require.NoError(t, err)

	_, err = r.Render(nil)
	assert.Error(t, err)
}
