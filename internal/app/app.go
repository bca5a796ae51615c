// Package app wires the skin registry, settings applier and interaction
// surfaces into the operations the commands invoke.
package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/skins/internal/config"
	"github.com/wizzomafizzo/skins/internal/prompt"
	"github.com/wizzomafizzo/skins/internal/skin"
	"github.com/wizzomafizzo/skins/internal/tui"
)

// Picker selects one option interactively and reports whether anything was
// chosen.
type Picker func(title string, options []tui.Option) (index int, ok bool, err error)

// NameInput asks the user for a skin name.
type NameInput func(promptText string) (string, error)

// App holds the wiring for one command invocation. Registries are rebuilt
// per operation; nothing is cached across invocations.
type App struct {
	fs        afero.Fs
	cfg       *config.Config
	pick      Picker
	input     NameInput
	out       io.Writer
	statePath string
}

// New creates an App over the given filesystem and configuration.
func New(fs afero.Fs, cfg *config.Config, opts ...Option) *App {
	app := &App{
		fs:    fs,
		cfg:   cfg,
		pick:  tui.Pick,
		input: prompt.TextInput,
		out:   os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Scan rebuilds the skin registry from the configured packages root.
func (a *App) Scan(ctx context.Context) (*skin.Registry, error) {
	return skin.Scan(ctx, a.fs, a.cfg.Packages)
}

func (a *App) userStore() *skin.UserStore {
	return skin.NewUserStore(a.fs, a.cfg.Packages)
}
