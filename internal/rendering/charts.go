package rendering

import (
	"time"

	"github.com/jonathan/cv-dashboard/internal/types"
)

// SkillScaleMax is the upper bound of the radar chart's radial axis
const SkillScaleMax = 5

// BarTrace is a horizontal Plotly bar trace: one bar per entry, drawn from
// Base (start date) for X milliseconds.
type BarTrace struct {
	Type        string   `json:"type"`
	Orientation string   `json:"orientation"`
	Name        string   `json:"name"`
	Y           []string `json:"y"`
	Base        []string `json:"base"`
	X           []int64  `json:"x"`
}

// RadarTrace is a filled Plotly scatterpolar trace
type RadarTrace struct {
	Type  string    `json:"type"`
	Name  string    `json:"name"`
	Fill  string    `json:"fill"`
	R     []float64 `json:"r"`
	Theta []string  `json:"theta"`
}

// Charts is the payload handed to the client-side chart script
type Charts struct {
	Timeline []BarTrace  `json:"timeline"`
	Radar    *RadarTrace `json:"radar,omitempty"`
	RadarMax int         `json:"radar_max"`
}

// TimelineChart builds one bar trace per category, in grouping order, so the
// chart legend lines up with the detail listing. Ongoing entries run until now.
func TimelineChart(groups types.CategoryGrouping, now time.Time) []BarTrace {
	traces := make([]BarTrace, 0, len(groups))
	for _, group := range groups {
		trace := BarTrace{
			Type:        "bar",
			Orientation: "h",
			Name:        group.Category,
		}
		for _, entry := range group.Entries {
			end := now
			if entry.End != nil {
				end = *entry.End
			}
			duration := end.Sub(entry.Start)
			if duration < 0 {
				duration = 0
			}
			trace.Y = append(trace.Y, entry.Title)
			trace.Base = append(trace.Base, entry.Start.Format(time.RFC3339))
			trace.X = append(trace.X, duration.Milliseconds())
		}
		traces = append(traces, trace)
	}
	return traces
}

// RadarChart builds the skill profile trace. It returns nil when no skill is rated.
func RadarChart(skills []types.Skill) *RadarTrace {
	trace := &RadarTrace{Type: "scatterpolar", Name: "Skill level", Fill: "toself"}
	for _, skill := range skills {
		if skill.Rating == nil {
			continue
		}
		trace.R = append(trace.R, *skill.Rating)
		trace.Theta = append(trace.Theta, skill.Name)
	}
	if len(trace.R) == 0 {
		return nil
	}
	return trace
}
