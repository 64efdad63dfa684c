package cvdata

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/jonathan/cv-dashboard/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	SourceEntries = "entries"
	SourceSkills  = "skills"
	SourceSocial  = "social"
)

// sheet is the header-resolved content of one worksheet
type sheet struct {
	source   string
	path     string
	columns  columnIndex
	rows     [][]string // data rows, header excluded
	text     map[cellPos]bool
	firstRow int // spreadsheet row number of rows[0]
	date1904 bool
}

// cellPos addresses a cell of sheet.rows
type cellPos struct {
	row, col int
}

// readSheet opens the workbook, reads one worksheet and closes the file.
// An empty sheet name selects the first worksheet.
func readSheet(source, path, sheetName string, columns []column) (*sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(source, path, err)
		}
		return nil, malformed(source, path, "failed to open workbook", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("[cvdata] failed to close %s: %v", path, cerr)
		}
	}()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, malformed(source, path, "workbook has no worksheets", nil)
		}
		sheetName = sheets[0]
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, malformed(source, path, fmt.Sprintf("failed to read worksheet %q", sheetName), err)
	}
	if len(rows) == 0 {
		return nil, malformed(source, path, fmt.Sprintf("worksheet %q is empty", sheetName), nil)
	}

	index, err := resolveColumns(rows[0], columns)
	if err != nil {
		return nil, malformed(source, path, "unexpected header", err)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	const firstRow = 2
	text, err := textCells(f, sheetName, rows[1:], firstRow)
	if err != nil {
		return nil, malformed(source, path, fmt.Sprintf("failed to read worksheet %q", sheetName), err)
	}

	return &sheet{
		source:   source,
		path:     path,
		columns:  index,
		rows:     rows[1:],
		text:     text,
		firstRow: firstRow,
		date1904: date1904,
	}, nil
}

// textCells records which non-empty cells are stored as strings rather than numbers
func textCells(f *excelize.File, sheetName string, rows [][]string, firstRow int) (map[cellPos]bool, error) {
	text := make(map[cellPos]bool)
	for i, row := range rows {
		for j, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, firstRow+i)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheetName, cell)
			if err != nil {
				return nil, err
			}
			switch typ {
			case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
				text[cellPos{row: i, col: j}] = true
			}
		}
	}
	return text, nil
}

// isText reports whether the cell for key in data row i holds text
func (s *sheet) isText(i int, key string) bool {
	pos, ok := s.columns[key]
	return ok && s.text[cellPos{row: i, col: pos}]
}

func (s *sheet) rowError(i int, cause error) error {
	return malformed(s.source, s.path, fmt.Sprintf("row %d", s.firstRow+i), cause)
}

// LoadEntries reads the career and education entries and formats their descriptions
func LoadEntries(path, sheetName string) ([]types.Entry, error) {
	s, err := readSheet(SourceEntries, path, sheetName, entryColumns)
	if err != nil {
		return nil, err
	}

	entries := make([]types.Entry, 0, len(s.rows))
	for i, row := range s.rows {
		if isBlankRow(row) {
			continue
		}

		startCell := s.columns.get(row, colStart)
		if startCell == "" {
			return nil, s.rowError(i, errors.New("start date is empty"))
		}
		start, err := parseDate(startCell, s.isText(i, colStart), s.date1904)
		if err != nil {
			return nil, s.rowError(i, err)
		}

		entry := types.Entry{
			Title:          s.columns.get(row, colTitle),
			Institution:    s.columns.get(row, colInstitution),
			Start:          start,
			Category:       s.columns.get(row, colCategory),
			RawDescription: s.columns.get(row, colDescription),
			Image:          imageReference(s.columns.get(row, colImage)),
		}

		if endCell := s.columns.get(row, colEnd); endCell != "" {
			end, err := parseDate(endCell, s.isText(i, colEnd), s.date1904)
			if err != nil {
				return nil, s.rowError(i, err)
			}
			entry.End = &end
		}

		entry.FormattedDescription = FormatDescription(entry.RawDescription)
		entries = append(entries, entry)
	}

	return entries, nil
}

// LoadSkills reads the skill ratings. Skills without a rating are kept with a nil rating.
func LoadSkills(path, sheetName string) ([]types.Skill, error) {
	s, err := readSheet(SourceSkills, path, sheetName, skillColumns)
	if err != nil {
		return nil, err
	}

	skills := make([]types.Skill, 0, len(s.rows))
	for i, row := range s.rows {
		if isBlankRow(row) {
			continue
		}
		rating, err := parseRating(s.columns.get(row, colSkillRating))
		if err != nil {
			return nil, s.rowError(i, err)
		}
		skills = append(skills, types.Skill{
			Name:   s.columns.get(row, colSkillName),
			Rating: rating,
		})
	}

	return skills, nil
}

// LoadSocialProfiles reads the social network to profile URL table
func LoadSocialProfiles(path, sheetName string) ([]types.SocialProfile, error) {
	s, err := readSheet(SourceSocial, path, sheetName, socialColumns)
	if err != nil {
		return nil, err
	}

	profiles := make([]types.SocialProfile, 0, len(s.rows))
	for _, row := range s.rows {
		if isBlankRow(row) {
			continue
		}
		profiles = append(profiles, types.SocialProfile{
			Network: s.columns.get(row, colNetwork),
			URL:     s.columns.get(row, colURL),
		})
	}

	return profiles, nil
}
