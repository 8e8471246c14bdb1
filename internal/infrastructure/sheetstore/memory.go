package sheetstore

import (
	"context"
	"fmt"
	"sync"
)

// Operation names accepted by MemoryClient.FailNext and MemoryClient.Calls
const (
	OpRead   = "read"
	OpAppend = "append"
	OpUpdate = "update"
	OpDelete = "delete"
)

// MemoryClient is an in-process Client. It mirrors the Sheets API behaviours
// the store relies on: trailing empty cells are trimmed on read, appends land
// after the last non-empty row and deletes shift later rows up. Cells keep
// the exact strings written, as with RAW value input.
type MemoryClient struct {
	mu       sync.Mutex
	order    []string
	sheets   map[string][][]string
	failures map[string]error
	calls    map[string]int
}

// NewMemoryClient creates an empty in-memory spreadsheet
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		sheets:   make(map[string][][]string),
		failures: make(map[string]error),
		calls:    make(map[string]int),
	}
}

// Seed creates (or replaces) a sheet with the given rows; the first row is the header.
func (m *MemoryClient) Seed(sheet string, rows ...[]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[sheet]; !ok {
		m.order = append(m.order, sheet)
	}
	grid := make([][]string, len(rows))
	for i, r := range rows {
		grid[i] = append([]string(nil), r...)
	}
	m.sheets[sheet] = grid
}

// Rows returns a copy of a sheet's raw grid
func (m *MemoryClient) Rows(sheet string) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	grid := m.sheets[sheet]
	out := make([][]string, len(grid))
	for i, r := range grid {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// FailNext makes the next call of the given operation return err
func (m *MemoryClient) FailNext(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[op] = err
}

// Calls reports how many times an operation has been invoked
func (m *MemoryClient) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *MemoryClient) begin(op string) error {
	m.calls[op]++
	if err, ok := m.failures[op]; ok {
		delete(m.failures, op)
		return err
	}
	return nil
}

func (m *MemoryClient) ReadRange(_ context.Context, a1Range string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(OpRead); err != nil {
		return nil, err
	}
	r, grid, err := m.resolve(a1Range)
	if err != nil {
		return nil, err
	}

	first := 1
	if r.StartRow > 0 {
		first = r.StartRow
	}
	last := len(grid)
	if r.EndRow > 0 && r.EndRow < last {
		last = r.EndRow
	}

	var out [][]string
	for row := first; row <= last; row++ {
		src := grid[row-1]
		var cells []string
		for col := r.StartCol; col <= r.EndCol && col <= len(src); col++ {
			cells = append(cells, src[col-1])
		}
		out = append(out, trimTrailingEmpty(cells))
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (m *MemoryClient) AppendRow(_ context.Context, a1Range string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(OpAppend); err != nil {
		return err
	}
	r, grid, err := m.resolve(a1Range)
	if err != nil {
		return err
	}
	for len(grid) > 0 && len(trimTrailingEmpty(grid[len(grid)-1])) == 0 {
		grid = grid[:len(grid)-1]
	}
	row := make([]string, r.StartCol-1+len(values))
	copy(row[r.StartCol-1:], values)
	m.sheets[r.Sheet] = append(grid, row)
	return nil
}

func (m *MemoryClient) UpdateRange(_ context.Context, a1Range string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(OpUpdate); err != nil {
		return err
	}
	r, grid, err := m.resolve(a1Range)
	if err != nil {
		return err
	}
	if r.StartRow == 0 {
		return fmt.Errorf("update range %q has no row", a1Range)
	}
	if width := r.EndCol - r.StartCol + 1; len(values) > width {
		return fmt.Errorf("%d values do not fit range %q", len(values), a1Range)
	}
	for len(grid) < r.StartRow {
		grid = append(grid, nil)
	}
	row := grid[r.StartRow-1]
	if need := r.StartCol - 1 + len(values); len(row) < need {
		row = append(row, make([]string, need-len(row))...)
	}
	copy(row[r.StartCol-1:], values)
	grid[r.StartRow-1] = row
	m.sheets[r.Sheet] = grid
	return nil
}

func (m *MemoryClient) DeleteRow(_ context.Context, sheet string, rowIndex int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.begin(OpDelete); err != nil {
		return err
	}
	grid, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("sheet %s not found", sheet)
	}
	if rowIndex < 0 || rowIndex >= len(grid) {
		return fmt.Errorf("row index %d out of range for sheet %s", rowIndex, sheet)
	}
	m.sheets[sheet] = append(grid[:rowIndex], grid[rowIndex+1:]...)
	return nil
}

func (m *MemoryClient) SheetTitles(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...), nil
}

func (m *MemoryClient) AddSheet(_ context.Context, title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[title]; ok {
		return fmt.Errorf("sheet %s already exists", title)
	}
	m.order = append(m.order, title)
	m.sheets[title] = nil
	return nil
}

func (m *MemoryClient) resolve(a1Range string) (A1Range, [][]string, error) {
	r, err := ParseA1Range(a1Range)
	if err != nil {
		return A1Range{}, nil, err
	}
	grid, ok := m.sheets[r.Sheet]
	if !ok {
		return A1Range{}, nil, fmt.Errorf("unable to parse range: %s", a1Range)
	}
	return r, grid, nil
}

func trimTrailingEmpty(cells []string) []string {
	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	if cells == nil {
		return []string{}
	}
	return cells
}
