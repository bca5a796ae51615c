package main

import (
	"github.com/spf13/cobra"
)

// createSetCommand creates the set command applying a skin.
func createSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Apply a skin",
		Long: `Apply all settings stored in a skin.

With both --package and --name the skin is applied directly:

  skins set --package User --name "Preset 1"

Otherwise an interactive picker lists the available skins, filtered by
--package when given. Cancelling the picker changes nothing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, application, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			pkg, _ := cmd.Flags().GetString("package")
			name, _ := cmd.Flags().GetString("name")
			return application.SetSkin(ctx, pkg, name)
		},
	}

	cmd.Flags().StringP("package", "p", "", "Package providing the skin")
	cmd.Flags().StringP("name", "n", "", "Name of the skin")

	return cmd
}
