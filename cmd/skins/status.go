package main

import (
	"github.com/spf13/cobra"
)

// createStatusCommand creates the status command.
func createStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active skin and recent applies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, application, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}
			return application.Status(ctx, cmd.OutOrStdout())
		},
	}
}
