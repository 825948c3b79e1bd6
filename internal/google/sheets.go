package google

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// SheetReader reads rectangular blocks of rows from a spreadsheet.
type SheetReader struct {
	service *sheets.Service
}

// NewSheetReader creates a SheetReader on the authorized session.
func NewSheetReader(ctx context.Context, sess *Session) (*SheetReader, error) {
	svc, err := sheets.NewService(ctx, sess.ClientOption())
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}
	return &SheetReader{service: svc}, nil
}

// ReadRange returns the rows of the given range as string tuples, preserving
// sheet order. Empty trailing cells are absent from their row's tuple, which
// is how the API reports them.
func (r *SheetReader) ReadRange(ctx context.Context, sheetID, rangeSpec string) ([][]string, error) {
	resp, err := r.service.Spreadsheets.Values.Get(sheetID, rangeSpec).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to read %s: %w", rangeSpec, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
