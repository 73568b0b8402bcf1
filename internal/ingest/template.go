package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const templateSheet = "Donors"

var templateExample = []string{
	"Jane",
	"Doe",
	"jane.doe@example.org",
	"250.00",
	"2023-01-15",
	"2024-11-02",
	"100.00",
	"4",
}

// WriteTemplateCSV writes the donor upload template as CSV.
func WriteTemplateCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(TemplateColumns); err != nil {
		return err
	}
	if err := cw.Write(templateExample); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplateXLSX writes the donor upload template as an Excel workbook.
func WriteTemplateXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return fmt.Errorf("failed to name template sheet: %w", err)
	}
	header := make([]interface{}, len(TemplateColumns))
	for i, c := range TemplateColumns {
		header[i] = c
	}
	example := make([]interface{}, len(templateExample))
	for i, c := range templateExample {
		example[i] = c
	}
	if err := f.SetSheetRow(templateSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write template header: %w", err)
	}
	if err := f.SetSheetRow(templateSheet, "A2", &example); err != nil {
		return fmt.Errorf("failed to write template example: %w", err)
	}
	return f.Write(w)
}
