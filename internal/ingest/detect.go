package ingest

import (
	"fmt"
	"io"

	apperrors "impact-report-backend/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

// XLSXContentType is the media type of Excel workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ParseUpload sniffs the content and hands it to the CSV or XLSX parser.
// Workbooks that only sniff as zip are still tried as XLSX.
func ParseUpload(file io.ReadSeeker) (*Result, error) {
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to detect upload type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind upload: %w", err)
	}

	for mt := detected; mt != nil; mt = mt.Parent() {
		switch {
		case mt.Is(XLSXContentType), mt.Is("application/zip"):
			return ParseXLSX(file)
		case mt.Is("text/csv"), mt.Is("text/plain"):
			return ParseCSV(file)
		}
	}
	return nil, fmt.Errorf("%w (got %s)", apperrors.ErrUnsupportedUploadType, detected.String())
}
