package cvdata

import (
	"sort"
	"strings"

	"github.com/jonathan/cv-dashboard/internal/types"
)

const bulletSeparator = " •"

// FormatDescription puts every " •" bullet on its own line and trims the result.
// An empty text yields the empty string.
func FormatDescription(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(strings.ReplaceAll(text, bulletSeparator, "\n•"))
}

// BuildEntryLookup maps every entry title to its institution and formatted
// description. When titles collide the later row wins.
func BuildEntryLookup(entries []types.Entry) types.EntryLookup {
	lookup := make(types.EntryLookup, len(entries))
	for _, entry := range entries {
		lookup[entry.Title] = types.EntryDetail{
			Institution: entry.Institution,
			Description: entry.FormattedDescription,
		}
	}
	return lookup
}

// GroupByCategory partitions entries by category in first-appearance order.
// Entries without a category are left out. Each group is sorted by start
// date, most recent first, keeping row order for equal dates.
func GroupByCategory(entries []types.Entry) types.CategoryGrouping {
	index := make(map[string]int)
	var grouping types.CategoryGrouping

	for _, entry := range entries {
		if !entry.HasCategory() {
			continue
		}
		i, ok := index[entry.Category]
		if !ok {
			i = len(grouping)
			index[entry.Category] = i
			grouping = append(grouping, types.CategoryGroup{Category: entry.Category})
		}
		grouping[i].Entries = append(grouping[i].Entries, entry)
	}

	for _, group := range grouping {
		sort.SliceStable(group.Entries, func(a, b int) bool {
			return group.Entries[a].Start.After(group.Entries[b].Start)
		})
	}

	return grouping
}

// FilterRatedSkills returns the skills that carry a rating, in input order
func FilterRatedSkills(skills []types.Skill) []types.Skill {
	rated := make([]types.Skill, 0, len(skills))
	for _, skill := range skills {
		if skill.Rating != nil {
			rated = append(rated, skill)
		}
	}
	return rated
}

// FindProfileURL returns the URL of the first profile whose network name
// matches network case-insensitively.
func FindProfileURL(profiles []types.SocialProfile, network string) (string, bool) {
	for _, profile := range profiles {
		if strings.EqualFold(profile.Network, network) {
			return profile.URL, true
		}
	}
	return "", false
}

// DuplicateTitles lists titles that occur more than once, in first-appearance order
func DuplicateTitles(entries []types.Entry) []string {
	counts := make(map[string]int, len(entries))
	var order []string
	for _, entry := range entries {
		if counts[entry.Title] == 0 {
			order = append(order, entry.Title)
		}
		counts[entry.Title]++
	}

	var duplicates []string
	for _, title := range order {
		if counts[title] > 1 {
			duplicates = append(duplicates, title)
		}
	}
	return duplicates
}
