package rendering

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/jonathan/cv-dashboard/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Layout selects how the page sections are arranged
type Layout string

const (
	LayoutSidebar      Layout = "sidebar"
	LayoutTwoColumn    Layout = "two-column"
	LayoutSingleColumn Layout = "single-column"
)

// DefaultLayout is used when no layout is configured
const DefaultLayout = LayoutTwoColumn

// Layouts lists every supported layout
func Layouts() []Layout {
	return []Layout{LayoutSidebar, LayoutTwoColumn, LayoutSingleColumn}
}

// ParseLayout maps a layout name to a Layout. The empty name selects DefaultLayout.
func ParseLayout(name string) (Layout, error) {
	if name == "" {
		return DefaultLayout, nil
	}
	for _, l := range Layouts() {
		if string(l) == name {
			return l, nil
		}
	}
	return "", &LayoutError{Name: name}
}

// PageData is the value the page template executes against
type PageData struct {
	Layout    Layout
	Dashboard *types.Dashboard
	Charts    Charts
}

// Renderer executes the parsed page templates
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"date":     formatDate,
		"period":   formatPeriod,
		"imageURL": imageURL,
	}).ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse templates",
			Cause:   err,
		}
	}
	return &Renderer{tmpl: tmpl, now: time.Now}, nil
}

// RenderPage writes the full dashboard page
func (r *Renderer) RenderPage(w io.Writer, d *types.Dashboard, layout Layout) error {
	data := PageData{
		Layout:    layout,
		Dashboard: d,
		Charts:    BuildCharts(d, r.now()),
	}
	if err := r.tmpl.ExecuteTemplate(w, "page.html.tmpl", data); err != nil {
		return &TemplateError{
			Message: "failed to execute page template",
			Cause:   err,
		}
	}
	return nil
}

// BuildCharts derives the chart payload from the available sections
func BuildCharts(d *types.Dashboard, now time.Time) Charts {
	charts := Charts{Timeline: []BarTrace{}, RadarMax: SkillScaleMax}
	if d.Timeline.Available() {
		charts.Timeline = TimelineChart(d.Timeline.Data.Groups, now)
	}
	if d.Skills.Available() {
		charts.Radar = RadarChart(d.Skills.Data)
	}
	return charts
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// formatPeriod renders "<start> – <end>", with "present" for ongoing entries
func formatPeriod(e types.Entry) string {
	end := "present"
	if e.End != nil {
		end = formatDate(*e.End)
	}
	return formatDate(e.Start) + " – " + end
}

func imageURL(name string) string {
	return "/images/" + url.PathEscape(name)
}
