package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/skins/internal/app"
	"github.com/wizzomafizzo/skins/internal/config"
	"github.com/wizzomafizzo/skins/internal/logging"
	"github.com/wizzomafizzo/skins/internal/storage"
)

// createRootCommand creates the main root command that shows help by
// default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "skins",
		Short: "Switch between named bundles of editor settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigFile, "Path to config file")

	rootCmd.AddCommand(
		createSetCommand(),
		createSaveCommand(),
		createDeleteCommand(),
		createListCommand(),
		createStatusCommand(),
	)

	return rootCmd
}

// createAppFromCommand loads config, attaches logging to the command
// context and wires the application.
func createAppFromCommand(cmd *cobra.Command) (context.Context, *app.App, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	fs := afero.NewOsFs()
	ctx, err := logging.New(cmd.Context(), fs, logging.Config{Level: zerolog.InfoLevel})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	opts := []app.Option{app.WithOutput(cmd.OutOrStdout())}
	if statePath, err := storage.New(fs).GetStatePath(); err == nil {
		opts = append(opts, app.WithStatePath(statePath))
	} else {
		logging.Get(ctx).Warn().Err(err).Msg("apply history disabled")
	}

	return ctx, app.New(fs, cfg, opts...), nil
}
