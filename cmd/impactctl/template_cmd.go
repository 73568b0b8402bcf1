package main

import (
	"fmt"
	"io"
	"os"

	"impact-report-backend/internal/ingest"

	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the donor upload template",
		RunE: func(cmd *cobra.Command, args []string) error {
			var write func(io.Writer) error
			switch format {
			case "csv":
				write = ingest.WriteTemplateCSV
			case "xlsx":
				write = ingest.WriteTemplateXLSX
			default:
				return fmt.Errorf("unknown --format %q: expected csv or xlsx", format)
			}

			if output == "" || output == "-" {
				return write(cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := write(f); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Template format: csv or xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
