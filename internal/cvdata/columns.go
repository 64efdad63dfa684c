package cvdata

import (
	"fmt"
	"strings"
)

// column describes one logical field and the header spellings that map to it
type column struct {
	key      string
	aliases  []string
	required bool
}

const (
	colTitle       = "title"
	colInstitution = "institution"
	colStart       = "start"
	colEnd         = "end"
	colCategory    = "category"
	colDescription = "description"
	colImage       = "image"

	colSkillName   = "name"
	colSkillRating = "rating"

	colNetwork = "network"
	colURL     = "url"
)

var entryColumns = []column{
	{key: colTitle, aliases: []string{"Bezeichnung", "Title", "Position"}, required: true},
	{key: colInstitution, aliases: []string{"Institution", "Organisation", "Organization", "Company"}, required: true},
	{key: colStart, aliases: []string{"Start", "Start Date", "Beginn"}, required: true},
	{key: colEnd, aliases: []string{"Ende", "Finish", "End", "End Date"}, required: true},
	{key: colCategory, aliases: []string{"Kategorie", "Category", "Klassifizierung"}},
	{key: colDescription, aliases: []string{"Beschreibung", "Description"}},
	{key: colImage, aliases: []string{"Bild", "Image"}},
}

var skillColumns = []column{
	{key: colSkillName, aliases: []string{"Kenntnis", "Skill", "Name"}, required: true},
	{key: colSkillRating, aliases: []string{"quantitative Beurteilung", "Rating", "Score"}, required: true},
}

var socialColumns = []column{
	{key: colNetwork, aliases: []string{"Social Media", "Network"}, required: true},
	{key: colURL, aliases: []string{"URL", "Link"}, required: true},
}

// columnIndex maps logical column keys to positions in a row
type columnIndex map[string]int

// resolveColumns matches a header row against the column definitions.
// Headers are compared case-insensitively after trimming; the first matching
// header wins.
func resolveColumns(header []string, columns []column) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		key := normalizeHeader(name)
		if key == "" {
			continue
		}
		if _, seen := positions[key]; !seen {
			positions[key] = i
		}
	}

	index := make(columnIndex, len(columns))
	var missing []string
	for _, col := range columns {
		found := false
		for _, alias := range col.aliases {
			if pos, ok := positions[normalizeHeader(alias)]; ok {
				index[col.key] = pos
				found = true
				break
			}
		}
		if !found && col.required {
			missing = append(missing, col.aliases[0])
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// get returns the trimmed cell for key, or "" when the column is absent or
// the row is shorter than the header.
func (ci columnIndex) get(row []string, key string) string {
	pos, ok := ci[key]
	if !ok || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
