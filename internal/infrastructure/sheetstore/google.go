package sheetstore

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// RAW keeps cells as the exact strings written. USER_ENTERED re-parses them
// like typed input, which mangles phone numbers and all-digit IDs.
const valueInputOption = "RAW"

// GoogleClient implements Client on top of the Google Sheets v4 API
type GoogleClient struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewGoogleClient creates a Sheets client authenticated with a service account key file
func NewGoogleClient(ctx context.Context, spreadsheetID, credentialsPath string) (*GoogleClient, error) {
	return newGoogleClient(ctx, spreadsheetID,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
}

func newGoogleClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*GoogleClient, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &GoogleClient{service: srv, spreadsheetID: spreadsheetID}, nil
}

func (g *GoogleClient) ReadRange(ctx context.Context, a1Range string) ([][]string, error) {
	resp, err := g.service.Spreadsheets.Values.Get(g.spreadsheetID, a1Range).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (g *GoogleClient) AppendRow(ctx context.Context, a1Range string, values []string) error {
	_, err := g.service.Spreadsheets.Values.
		Append(g.spreadsheetID, a1Range, toValueRange(values)).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	return err
}

func (g *GoogleClient) UpdateRange(ctx context.Context, a1Range string, values []string) error {
	_, err := g.service.Spreadsheets.Values.
		Update(g.spreadsheetID, a1Range, toValueRange(values)).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	return err
}

func (g *GoogleClient) DeleteRow(ctx context.Context, sheet string, rowIndex int) error {
	sheetID, err := g.sheetID(ctx, sheet)
	if err != nil {
		return err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIndex),
					EndIndex:   int64(rowIndex + 1),
				},
			},
		}},
	}
	_, err = g.service.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	return err
}

func (g *GoogleClient) SheetTitles(ctx context.Context) ([]string, error) {
	ss, err := g.service.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func (g *GoogleClient) AddSheet(ctx context.Context, title string) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}
	_, err := g.service.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	return err
}

func (g *GoogleClient) sheetID(ctx context.Context, title string) (int64, error) {
	ss, err := g.service.Spreadsheets.Get(g.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, err
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return s.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %s not found", title)
}

func toValueRange(values []string) *sheets.ValueRange {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return &sheets.ValueRange{Values: [][]interface{}{row}}
}
