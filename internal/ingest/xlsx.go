package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	apperrors "impact-report-backend/internal/errors"
)

// ParseXLSX reads the first worksheet of an Excel workbook with the same
// header and row rules as ParseCSV. The first non-empty row is the header.
func ParseXLSX(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ErrMissingHeader
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	headerRow := -1
	for i, row := range rows {
		if !blankCells(row) {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil, apperrors.ErrMissingHeader
	}

	idx := columnIndex(rows[headerRow])
	if len(idx) == 0 {
		return nil, apperrors.ErrNoRecognizedColumns
	}

	res := &Result{}
	for i := headerRow + 1; i < len(rows); i++ {
		res.add(i-headerRow, pick(idx, rows[i]))
	}
	return res, nil
}

func blankCells(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
