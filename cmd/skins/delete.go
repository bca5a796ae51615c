package main

import (
	"github.com/spf13/cobra"
)

// createDeleteCommand creates the delete command for user skins.
func createDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved user skin",
		Long: `Remove a skin from the user skins file. Without a name, pick from the
saved skins. Skins shipped by other packages cannot be deleted.`,
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
			return application.DeleteUserSkin(ctx, name)
		},
	}
}
