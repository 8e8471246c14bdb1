package sheetstore

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ColumnIndexToLabel converts a 1-based column index to its sheet label
// (1 -> A, 26 -> Z, 27 -> AA). Bijective base-26: there is no zero digit.
func ColumnIndexToLabel(n int) string {
	if n <= 0 {
		return ""
	}
	var label []byte
	for n > 0 {
		rem := (n - 1) % 26
		label = append([]byte{byte('A' + rem)}, label...)
		n = (n - rem - 1) / 26
	}
	return string(label)
}

// ColumnLabelToIndex is the inverse of ColumnIndexToLabel. It returns 0 for
// an empty or non-alphabetic label.
func ColumnLabelToIndex(label string) int {
	n := 0
	for _, r := range strings.ToUpper(label) {
		if r < 'A' || r > 'Z' {
			return 0
		}
		n = n*26 + int(r-'A'+1)
	}
	return n
}

// A1Range is a parsed range in A1 notation. Columns and rows are 1-based;
// a zero StartRow/EndRow means the range is unbounded in that direction.
type A1Range struct {
	Sheet    string
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

// ParseA1Range parses ranges of the forms "Sheet!A:Z", "Sheet!A1:Z1" and "Sheet!A5".
// The sheet name may be quoted as in "'Order Items'!A:Z".
func ParseA1Range(s string) (A1Range, error) {
	sheet, cells, ok := splitSheet(s)
	if !ok || sheet == "" || cells == "" {
		return A1Range{}, fmt.Errorf("invalid range %q", s)
	}
	r := A1Range{Sheet: sheet}

	start, end, hasEnd := strings.Cut(cells, ":")
	var err error
	if r.StartCol, r.StartRow, err = parseCell(start); err != nil {
		return A1Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if !hasEnd {
		r.EndCol, r.EndRow = r.StartCol, r.StartRow
		return r, nil
	}
	if r.EndCol, r.EndRow, err = parseCell(end); err != nil {
		return A1Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	if r.EndCol < r.StartCol {
		return A1Range{}, fmt.Errorf("invalid range %q: end column before start column", s)
	}
	return r, nil
}

// splitSheet separates the sheet name from the cell part, unquoting the name
// and its doubled single quotes when it is quoted.
func splitSheet(s string) (sheet, cells string, ok bool) {
	if !strings.HasPrefix(s, "'") {
		i := strings.LastIndex(s, "!")
		if i < 0 {
			return "", "", false
		}
		return s[:i], s[i+1:], true
	}
	var name strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			name.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			name.WriteByte('\'')
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '!' {
			return name.String(), s[i+2:], true
		}
		return "", "", false
	}
	return "", "", false
}

// quoteSheet quotes names that are not plain identifiers
func quoteSheet(name string) string {
	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return "'" + strings.ReplaceAll(name, "'", "''") + "'"
		}
	}
	return name
}

func parseCell(cell string) (col, row int, err error) {
	i := 0
	for i < len(cell) && ((cell[i] >= 'A' && cell[i] <= 'Z') || (cell[i] >= 'a' && cell[i] <= 'z')) {
		i++
	}
	col = ColumnLabelToIndex(cell[:i])
	if col == 0 {
		return 0, 0, fmt.Errorf("missing column in %q", cell)
	}
	if i == len(cell) {
		return col, 0, nil
	}
	row, err = strconv.Atoi(cell[i:])
	if err != nil || row <= 0 {
		return 0, 0, fmt.Errorf("bad row in %q", cell)
	}
	return col, row, nil
}

func (r A1Range) String() string {
	start := ColumnIndexToLabel(r.StartCol)
	end := ColumnIndexToLabel(r.EndCol)
	if r.StartRow > 0 {
		start += strconv.Itoa(r.StartRow)
	}
	if r.EndRow > 0 {
		end += strconv.Itoa(r.EndRow)
	}
	return quoteSheet(r.Sheet) + "!" + start + ":" + end
}

// range builders for a collection addressed by the fixed A:Z column span

func columnsRange(collection string) string {
	return A1Range{Sheet: collection, StartCol: 1, EndCol: maxColumns}.String()
}

func headerRange(collection string) string {
	return A1Range{Sheet: collection, StartCol: 1, StartRow: 1, EndCol: maxColumns, EndRow: 1}.String()
}

// rowRange addresses one data row; position is zero-based among data rows,
// so the sheet row is position+2 (1-based addressing plus the header row).
func rowRange(collection string, position, width int) string {
	row := position + 2
	return A1Range{Sheet: collection, StartCol: 1, StartRow: row, EndCol: width, EndRow: row}.String()
}
