package main

import (
	"fmt"
	"os"

	"impact-report-backend/internal/ingest"
	"impact-report-backend/internal/logger"

	"github.com/spf13/cobra"
)

type validateOutput struct {
	File      string            `json:"file"`
	Outcome   ingest.Outcome    `json:"outcome"`
	TotalRows int               `json:"totalRows"`
	ValidRows int               `json:"validRows"`
	Errors    []ingest.RowError `json:"errors,omitempty"`
}

func newValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Parse and validate a donor CSV or XLSX file without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := ingest.ParseUpload(f)
			if err != nil {
				return err
			}
			logger.New().WithFields(map[string]interface{}{
				"file":    args[0],
				"rows":    res.TotalRows,
				"invalid": res.InvalidRowCount(),
			}).Debug("donor file validated")

			out := validateOutput{
				File:      args[0],
				Outcome:   res.Outcome(),
				TotalRows: res.TotalRows,
				ValidRows: len(res.ValidRows),
				Errors:    res.Errors,
			}
			if err := writeJSON(cmd.OutOrStdout(), out); err != nil {
				return err
			}
			if strict && len(res.Errors) > 0 {
				return fmt.Errorf("%d rows failed validation", res.InvalidRowCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any row is invalid")
	return cmd
}
