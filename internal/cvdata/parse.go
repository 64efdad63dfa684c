package cvdata

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02.01.2006",
	"2.1.2006",
	"2006-01",
	"01/2006",
	"01.2006",
	"2006",
}

// parseDate converts a date cell. Numeric cells hold Excel serial dates; text
// cells are matched against dateLayouts so that "12.2020" or "2020" are not
// read as serial numbers. A text cell holding a whole serial number still parses.
func parseDate(value string, text, date1904 bool) (time.Time, error) {
	if text {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
		}
		if _, err := strconv.Atoi(value); err != nil {
			return time.Time{}, fmt.Errorf("unrecognized date %q", value)
		}
	}

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, fmt.Errorf("unrecognized date %q", value)
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid serial date %q: %w", value, err)
	}
	return t, nil
}

// parseRating returns nil for an empty cell
func parseRating(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	rating, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid rating %q", value)
	}
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return nil, fmt.Errorf("invalid rating %q", value)
	}
	return &rating, nil
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// imageReference keeps a reference only when it points at a displayable image
func imageReference(value string) string {
	if value == "" {
		return ""
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(value))] {
		return ""
	}
	return value
}
