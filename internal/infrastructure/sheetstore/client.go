package sheetstore

import "context"

// Client is the remote tabular service the store talks to. Ranges are in A1
// notation and always carry the sheet name.
type Client interface {
	ReadRange(ctx context.Context, a1Range string) ([][]string, error)
	AppendRow(ctx context.Context, a1Range string, values []string) error
	UpdateRange(ctx context.Context, a1Range string, values []string) error
	// DeleteRow removes one grid row; rowIndex is zero-based and 0 is the header.
	DeleteRow(ctx context.Context, sheet string, rowIndex int) error

	SheetTitles(ctx context.Context) ([]string, error)
	AddSheet(ctx context.Context, title string) error
}
