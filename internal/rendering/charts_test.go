package rendering

import (
	"testing"
	"time"

	"github.com/jonathan/cv-dashboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineChart(t *testing.T) {
	now := date(2025, 1, 1)
	groups := types.CategoryGrouping{
		{Category: "Work", Entries: []types.Entry{
			{Title: "Current", Start: date(2024, 12, 31)},
			{Title: "Past", Start: date(2020, 1, 1), End: ptr(date(2020, 1, 2))},
		}},
		{Category: "Edu", Entries: []types.Entry{
			{Title: "Odd", Start: date(2019, 1, 2), End: ptr(date(2019, 1, 1))},
		}},
	}

	traces := TimelineChart(groups, now)

	require.Len(t, traces, 2)
	assert.Equal(t, "Work", traces[0].Name)
	assert.Equal(t, "h", traces[0].Orientation)
	assert.Equal(t, []string{"Current", "Past"}, traces[0].Y)
	assert.Equal(t, []string{"2024-12-31T00:00:00Z", "2020-01-01T00:00:00Z"}, traces[0].Base)
	day := (24 * time.Hour).Milliseconds()
	assert.Equal(t, []int64{day, day}, traces[0].X)
	assert.Equal(t, []int64{0}, traces[1].X, "inverted ranges are clamped")
}

func TestRadarChart(t *testing.T) {
	trace := RadarChart([]types.Skill{
		{Name: "Python", Rating: ptr(4.0)},
		{Name: "Unrated"},
		{Name: "SQL", Rating: ptr(2.5)},
	})

	require.NotNil(t, trace)
	assert.Equal(t, "scatterpolar", trace.Type)
	assert.Equal(t, "toself", trace.Fill)
	assert.Equal(t, []float64{4, 2.5}, trace.R)
	assert.Equal(t, []string{"Python", "SQL"}, trace.Theta)

	assert.Nil(t, RadarChart(nil))
	assert.Nil(t, RadarChart([]types.Skill{{Name: "x"}}))
}

func TestBuildCharts_UnavailableSections(t *testing.T) {
	d := &types.Dashboard{
		Timeline: types.Section[types.Timeline]{Status: types.SectionNotFound},
		Skills:   types.Section[[]types.Skill]{Status: types.SectionMalformed},
	}

	charts := BuildCharts(d, date(2025, 1, 1))
	assert.NotNil(t, charts.Timeline)
	assert.Empty(t, charts.Timeline)
	assert.Nil(t, charts.Radar)
	assert.Equal(t, SkillScaleMax, charts.RadarMax)
}
