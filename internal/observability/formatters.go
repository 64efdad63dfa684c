// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/cv-dashboard/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintDashboard outputs every section of a dashboard
func (p *Printer) PrintDashboard(d *types.Dashboard) {
	if d == nil {
		return
	}
	p.PrintSources(d)
	p.PrintProfile(&d.Profile, d.Social.Data)
	p.PrintTimeline(d.Timeline)
	p.PrintSkills(d.Skills)
}

// PrintSources outputs the load status of every optional source.
func (p *Printer) PrintSources(d *types.Dashboard) {
	if d == nil {
		return
	}

	rows := []struct {
		name   string
		status types.SectionStatus
		notice string
	}{
		{"timeline", d.Timeline.Status, d.Timeline.Notice},
		{"skills", d.Skills.Status, d.Skills.Notice},
		{"social", d.Social.Status, d.Social.Notice},
		{"photo", d.Photo.Status, d.Photo.Notice},
		{"map", d.Map.Status, d.Map.Notice},
	}

	var sb strings.Builder
	for _, row := range rows {
		icon := "✓"
		if row.status != types.SectionAvailable {
			icon = "✗"
		}
		sb.WriteString(fmt.Sprintf("%s %-9s %s\n", icon, row.name, row.status))
		if row.notice != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", row.notice))
		}
	}

	p.printBox("DATA SOURCES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs the personal details and static lists.
func (p *Printer) PrintProfile(profile *types.Profile, social types.SocialLinks) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", profile.Name))
	if profile.Headline != "" {
		sb.WriteString(fmt.Sprintf("Headline: %s\n", profile.Headline))
	}
	if profile.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", profile.Email))
	}
	if social.URL != "" {
		sb.WriteString(fmt.Sprintf("%-9s %s\n", social.Network+":", social.URL))
	}
	if profile.Location != nil {
		sb.WriteString(fmt.Sprintf("Location: %s (%.4f, %.4f)\n", profile.Location.Label, profile.Location.Latitude, profile.Location.Longitude))
	}

	writeList(&sb, "Hobbies", profile.Hobbies)
	writeList(&sb, "Certificates", profile.Certificates)

	analyses := make([]string, 0, len(profile.Analyses))
	for _, link := range profile.Analyses {
		analyses = append(analyses, link.Title)
	}
	writeList(&sb, "Analyses", analyses)

	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("\n%s:\n", title))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintTimeline outputs the entries of each category, most recent first.
func (p *Printer) PrintTimeline(timeline types.Section[types.Timeline]) {
	if !timeline.Available() {
		p.printBox("TIMELINE", fmt.Sprintf("Unavailable (%s): %s", timeline.Status, timeline.Notice))
		return
	}

	var sb strings.Builder
	uncategorized := len(timeline.Data.Entries)
	for _, group := range timeline.Data.Groups {
		uncategorized -= len(group.Entries)
	}
	sb.WriteString(fmt.Sprintf("Entries: %d in %d categories", len(timeline.Data.Entries), len(timeline.Data.Groups)))
	if uncategorized > 0 {
		sb.WriteString(fmt.Sprintf(", %d without category", uncategorized))
	}
	sb.WriteString("\n")

	for _, group := range timeline.Data.Groups {
		sb.WriteString(fmt.Sprintf("\n%s:\n", group.Category))
		count := min(len(group.Entries), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := group.Entries[i]
			sb.WriteString(fmt.Sprintf("  %s  %s\n", period(e), e.Title))
		}
		if len(group.Entries) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(group.Entries)-maxItemsToShow))
		}
	}

	p.printBox("TIMELINE", strings.TrimSuffix(sb.String(), "\n"))
}

func period(e types.Entry) string {
	end := "present"
	if e.End != nil {
		end = e.End.Format("2006-01")
	}
	return fmt.Sprintf("%s–%-7s", e.Start.Format("2006-01"), end)
}

// PrintSkills outputs the rated skills as a bar per skill.
func (p *Printer) PrintSkills(skills types.Section[[]types.Skill]) {
	if !skills.Available() {
		p.printBox("SKILLS", fmt.Sprintf("Unavailable (%s): %s", skills.Status, skills.Notice))
		return
	}
	if len(skills.Data) == 0 {
		p.printBox("SKILLS", "No rated skills")
		return
	}

	var sb strings.Builder
	for _, s := range skills.Data {
		rating := 0.0
		if s.Rating != nil {
			rating = *s.Rating
		}
		filled := min(max(int(rating+0.5), 0), 10)
		sb.WriteString(fmt.Sprintf("%-20s %s %.1f\n", truncate(s.Name, 20), strings.Repeat("■", filled), rating))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRenderTime outputs how long a render pass took
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRenderTime(d time.Duration) {
	fmt.Fprintf(p.out, "Rendered in %v\n", d.Round(time.Millisecond))
}
