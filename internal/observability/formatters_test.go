package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/cv-dashboard/internal/types"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func sampleTimeline() types.Section[types.Timeline] {
	analyst := types.Entry{Title: "Data Analyst", Start: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		End: ptr(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)), Category: "Employment"}
	engineer := types.Entry{Title: "Data Engineer", Start: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Category: "Employment"}
	course := types.Entry{Title: "Language course", Start: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)}

	return types.Section[types.Timeline]{
		Status: types.SectionAvailable,
		Data: types.Timeline{
			Entries: []types.Entry{analyst, engineer, course},
			Groups:  types.CategoryGrouping{{Category: "Employment", Entries: []types.Entry{engineer, analyst}}},
		},
	}
}

func TestPrintTimeline(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTimeline(sampleTimeline())
	output := buf.String()

	assert.Contains(t, output, "TIMELINE")
	assert.Contains(t, output, "Entries: 3 in 1 categories, 1 without category")
	assert.Contains(t, output, "Employment:")
	assert.Contains(t, output, "2024-07–present")
	assert.Contains(t, output, "2022-03–2024-06")
	assert.Less(t, strings.Index(output, "Data Engineer"), strings.Index(output, "Data Analyst"))
	assert.NotContains(t, output, "Language course")
}

func TestPrintTimeline_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTimeline(types.Section[types.Timeline]{Status: types.SectionNotFound, Notice: "No CV file"})

	assert.Contains(t, buf.String(), "Unavailable (not_found): No CV file")
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(types.Section[[]types.Skill]{
		Status: types.SectionAvailable,
		Data:   []types.Skill{{Name: "Python", Rating: ptr(4.0)}, {Name: "SQL", Rating: ptr(3.5)}},
	})
	output := buf.String()

	assert.Contains(t, output, "SKILLS")
	assert.Contains(t, output, "■■■■ 4.0")
	assert.Contains(t, output, "■■■■ 3.5")
}

func TestPrintSkills_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(types.Section[[]types.Skill]{Status: types.SectionAvailable})

	assert.Contains(t, buf.String(), "No rated skills")
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	profile := &types.Profile{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Location:     &types.Location{Label: "St. Gallen", Latitude: 47.42, Longitude: 9.37},
		Hobbies:      []string{"a", "b", "c", "d", "e", "f", "g"},
		Certificates: []string{"Hermes 5.1"},
		Analyses:     []types.Link{{Title: "Marathon", URL: "https://example.com"}},
	}
	p.PrintProfile(profile, types.SocialLinks{Network: "linkedin", URL: "https://linkedin.example/in/jane"})
	output := buf.String()

	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "linkedin: https://linkedin.example/in/jane")
	assert.Contains(t, output, "St. Gallen (47.4200, 9.3700)")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "Hermes 5.1")
	assert.Contains(t, output, "Marathon")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil, types.SocialLinks{})

	assert.Empty(t, buf.String())
}

func TestPrintSources(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSources(&types.Dashboard{
		Timeline: sampleTimeline(),
		Skills:   types.Section[[]types.Skill]{Status: types.SectionMalformed, Notice: "The skills file could not be loaded."},
		Social:   types.Section[types.SocialLinks]{Status: types.SectionAvailable},
		Photo:    types.Section[string]{Status: types.SectionNotFound},
		Map:      types.Section[*types.Location]{Status: types.SectionAvailable},
	})
	output := buf.String()

	assert.Contains(t, output, "✓ timeline  available")
	assert.Contains(t, output, "✗ skills    malformed")
	assert.Contains(t, output, "The skills file could not be loaded.")
	assert.Contains(t, output, "✗ photo     not_found")
}

func TestPrintDashboard_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDashboard(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("•", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintRenderTime(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRenderTime(1500 * time.Microsecond)
	assert.Equal(t, "Rendered in 2ms\n", buf.String())
}
