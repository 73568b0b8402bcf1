package main

import (
	"fmt"
	"strings"

	"impact-report-backend/internal/token"

	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var attempt int

	cmd := &cobra.Command{
		Use:   "token EMAIL",
		Short: "Print the impact URL token derived from a donor email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if attempt < 0 || attempt > token.MaxAttempts {
				return fmt.Errorf("--attempt must be between 0 and %d", token.MaxAttempts)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), token.GenerateSalted(strings.TrimSpace(args[0]), attempt))
			return err
		},
	}

	cmd.Flags().IntVar(&attempt, "attempt", 0, "Salted regeneration attempt (0 is the unsalted token)")
	return cmd
}
