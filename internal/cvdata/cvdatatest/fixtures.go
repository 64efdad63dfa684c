// Package cvdatatest writes spreadsheet fixtures for tests.
package cvdatatest

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// Date returns midnight UTC of the given day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// WriteWorkbook saves rows (header first) to dir/name as a single-sheet workbook
// and returns the file path.
func WriteWorkbook(t testing.TB, dir, name string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name for row %d: %v", i+1, err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			t.Fatalf("write row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook %s: %v", path, err)
	}
	return path
}

// EntryHeader is the German header row of the CV workbook
var EntryHeader = []any{"Bezeichnung", "Institution", "Start", "Ende", "Kategorie", "Beschreibung", "Bild"}

// SkillHeader is the header row of the skills workbook
var SkillHeader = []any{"Kenntnis", "quantitative Beurteilung"}

// SocialHeader is the header row of the social media workbook
var SocialHeader = []any{"Social Media", "URL"}

// WriteSampleWorkbooks writes a small CV, skills and social workbook into dir
// and returns their paths.
func WriteSampleWorkbooks(t testing.TB, dir string) (entries, skills, social string) {
	t.Helper()

	entries = WriteWorkbook(t, dir, "CV.xlsx", [][]any{
		EntryHeader,
		{"Data Analyst", "City of St. Gallen", Date(2022, 3, 1), Date(2024, 6, 30), "Employment", "Reporting • Dashboards", "city.png"},
		{"BSc Business IT", "FHS St. Gallen", Date(2018, 9, 1), Date(2022, 2, 28), "Education", "", ""},
		{"Data Engineer", "Dalix", Date(2024, 7, 1), "", "Employment", "Pipelines •Power BI", "logo.svg"},
		{"Language course", "Cambridge", Date(2016, 1, 10), Date(2016, 6, 30), "", "", ""},
	})
	skills = WriteWorkbook(t, dir, "Kenntnisse.xlsx", [][]any{
		SkillHeader,
		{"Python", 4},
		{"Teamwork", ""},
		{"SQL", 3.5},
	})
	social = WriteWorkbook(t, dir, "Social Media.xlsx", [][]any{
		SocialHeader,
		{"Xing", "https://xing.example/me"},
		{"LinkedIn", "https://linkedin.example/in/me"},
	})
	return entries, skills, social
}

