package main

import (
	"github.com/spf13/cobra"
)

// createSaveCommand creates the save command capturing the current look.
func createSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save [name]",
		Short: "Save the current settings as a user skin",
		Long: `Capture the settings named by the skin-template configuration and save
them as a user skin. Without a name, pick between saving as a new skin or
updating an existing one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, application, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return application.SaveUserSkin(ctx, name)
		},
	}
}
