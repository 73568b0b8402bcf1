package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	apperrors "impact-report-backend/internal/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseAndValidate parses a complete CSV document and validates every row.
func ParseAndValidate(rawCSV string) (*Result, error) {
	return ParseCSV(strings.NewReader(rawCSV))
}

// ParseCSV reads a CSV stream whose first line is the header row. A row with
// broken quoting is reported as a parse_error on the line where it starts and
// reading resumes on the next physical line, so an unterminated quote cannot
// swallow the rows after it. Only a missing or unusable header fails the whole
// file.
func ParseCSV(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := newCSVReader(data)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	headerLine, _ := reader.FieldPos(0)

	idx := columnIndex(header)
	if len(idx) == 0 {
		return nil, apperrors.ErrNoRecognizedColumns
	}

	res := &Result{}
	// consumed counts the physical lines before rest
	offset := reader.InputOffset()
	consumed := bytes.Count(data[:offset], []byte("\n"))
	rest := data[offset:]
	for len(rest) > 0 {
		reader := newCSVReader(rest)
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("failed to read CSV: %w", err)
			}
			res.addParseError(consumed+parseErr.StartLine-headerLine, parseErr.Err)
			rest = dropLines(rest, parseErr.StartLine)
			consumed += parseErr.StartLine
			continue
		}
		line, _ := reader.FieldPos(0)
		res.add(consumed+line-headerLine, pick(idx, record))

		end := reader.InputOffset()
		consumed += bytes.Count(rest[:end], []byte("\n"))
		rest = rest[end:]
	}
	return res, nil
}

func newCSVReader(data []byte) *csv.Reader {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	return reader
}

// dropLines removes the first n physical lines of data.
func dropLines(data []byte, n int) []byte {
	for ; n > 0 && len(data) > 0; n-- {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			return nil
		}
		data = data[i+1:]
	}
	return data
}

func pick(idx map[string]int, record []string) map[string]string {
	fields := make(map[string]string, len(idx))
	for field, i := range idx {
		if i < len(record) {
			fields[field] = record[i]
		}
	}
	return fields
}
