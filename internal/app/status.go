package app

import (
	"context"
	"fmt"
	"io"

	"github.com/wizzomafizzo/skins/internal/settings"
	"github.com/wizzomafizzo/skins/internal/state"
)

const historyLimit = 10

// Status writes the active skin and recent apply history to w.
func (a *App) Status(ctx context.Context, w io.Writer) error {
	path := settings.TargetPath(a.cfg.Packages, settings.Preferences)
	prefs, err := settings.Load(a.fs, path)
	if err != nil {
		return err
	}

	if current, ok := prefs.Get(settings.CurrentSkinKey).(string); ok && current != "" {
		_, _ = fmt.Fprintf(w, "Current skin: %s\n", current)
	} else {
		_, _ = fmt.Fprintln(w, "Current skin: none")
	}

	if a.statePath == "" {
		return nil
	}

	manager, err := state.NewManager(a.statePath)
	if err != nil {
		return fmt.Errorf("failed to open apply history: %w", err)
	}
	defer func() { _ = manager.Close() }()

	recent, err := manager.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		return nil
	}

	_, _ = fmt.Fprintln(w, "Recently applied:")
	for _, applied := range recent {
		_, _ = fmt.Fprintf(w, "  %s  %s/%s\n",
			applied.AppliedAt.Format("2006-01-02 15:04"),
			applied.Package, applied.Name)
	}
	return nil
}
