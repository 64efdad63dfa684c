// Package types provides type definitions for structured data used throughout the CV dashboard.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Entry represents one career or education row of the CV spreadsheet
type Entry struct {
	Title                string     `json:"title"`
	Institution          string     `json:"institution"`
	Start                time.Time  `json:"start"`
	End                  *time.Time `json:"end,omitempty"` // nil for an ongoing entry
	Category             string     `json:"category,omitempty"`
	RawDescription       string     `json:"raw_description,omitempty"`
	FormattedDescription string     `json:"formatted_description"`
	Image                string     `json:"image,omitempty"`
}

// HasCategory reports whether the entry carries a classification label
func (e Entry) HasCategory() bool {
	return e.Category != ""
}

// Skill represents one self-rated competency
type Skill struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
}

// SocialProfile maps a social network name to a profile URL
type SocialProfile struct {
	Network string `json:"network"`
	URL     string `json:"url"`
}

// EntryDetail is the on-demand detail shown for a selected entry
type EntryDetail struct {
	Institution string `json:"institution"`
	Description string `json:"description"`
}

// EntryLookup maps an entry title to its detail
type EntryLookup map[string]EntryDetail

// CategoryGroup holds the entries of one category, most recent first
type CategoryGroup struct {
	Category string  `json:"category"`
	Entries  []Entry `json:"entries"`
}

// CategoryGrouping is the ordered list of category groups for the timeline
type CategoryGrouping []CategoryGroup

// Categories returns the category names in display order
func (g CategoryGrouping) Categories() []string {
	names := make([]string, 0, len(g))
	for _, group := range g {
		names = append(names, group.Category)
	}
	return names
}
