package record

import (
	"context"
	"fmt"
)

// RangeReader is the slice of the spreadsheet client the batch source needs.
type RangeReader interface {
	ReadRange(ctx context.Context, sheetID, rangeSpec string) ([][]string, error)
}

// SheetSource produces raw tuples from a fixed spreadsheet block, one per
// row, preserving source row order. The configured range starts below the
// header row.
type SheetSource struct {
	reader  RangeReader
	sheetID string
	span    string
}

// NewSheetSource creates a SheetSource over the given spreadsheet and range.
func NewSheetSource(reader RangeReader, sheetID, span string) *SheetSource {
	return &SheetSource{reader: reader, sheetID: sheetID, span: span}
}

// Tuples reads the whole block. Validation happens later, tuple by tuple, so
// a malformed row never aborts the read.
func (s *SheetSource) Tuples(ctx context.Context) ([][]string, error) {
	if s.sheetID == "" {
		return nil, fmt.Errorf("sheet source: spreadsheet id is required")
	}
	return s.reader.ReadRange(ctx, s.sheetID, s.span)
}
