package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/skins/internal/output"
)

// createListCommand creates the list command.
func createListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available skins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, application, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			pkg, _ := cmd.Flags().GetString("package")
			format, _ := cmd.Flags().GetString("output")
			return application.List(ctx, pkg, output.FormatType(format), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("package", "p", "", "Only list skins from this package")
	cmd.Flags().StringP("output", "o", "plain", "Output format: plain, json or yaml")

	return cmd
}
