package main

import (
	"impact-report-backend/internal/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "impactctl",
		Short:         "Offline tools for donor files, impact metrics and impact tokens",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Configure(logLevel, false)
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newImpactCmd())
	cmd.AddCommand(newTokenCmd())
	cmd.AddCommand(newTemplateCmd())
	return cmd
}
