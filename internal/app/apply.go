package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/wizzomafizzo/skins/internal/logging"
	"github.com/wizzomafizzo/skins/internal/settings"
	"github.com/wizzomafizzo/skins/internal/skin"
	"github.com/wizzomafizzo/skins/internal/state"
)

// ApplySkin merges every target of the skin into its settings file and
// records the skin as current. A target that cannot be read or written is
// logged and skipped; the remaining targets still apply. Applying the same
// skin twice leaves the targets unchanged.
func (a *App) ApplySkin(ctx context.Context, s skin.Skin) error {
	log := logging.Get(ctx)

	targets := make([]string, 0, len(s.Data))
	for target := range s.Data {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	applied := 0
	for _, target := range targets {
		path := settings.TargetPath(a.cfg.Packages, target)

		store, err := settings.Load(a.fs, path)
		if err != nil {
			log.Warn().Err(err).Str("target", target).
				Msg("skipping unreadable settings target")
			continue
		}

		store.Merge(s.Data[target])

		if err := settings.Save(a.fs, path, store); err != nil {
			log.Warn().Err(err).Str("target", target).
				Msg("skipping unwritable settings target")
			continue
		}
		applied++
	}

	if applied == 0 {
		return fmt.Errorf("no targets of skin %s could be applied", s.Path())
	}

	if err := a.recordCurrent(s); err != nil {
		log.Warn().Err(err).Msg("failed to record current skin preference")
	}
	a.recordHistory(ctx, s)

	log.Info().Str("skin", s.Path()).Int("targets", applied).Msg("applied skin")
	_, _ = fmt.Fprintf(a.out, "Applied skin %s\n", s.Path())
	return nil
}

// recordCurrent stores "<package>/<name>" under the skin preference key so
// listings can preselect the active skin.
func (a *App) recordCurrent(s skin.Skin) error {
	path := settings.TargetPath(a.cfg.Packages, settings.Preferences)
	store, err := settings.Load(a.fs, path)
	if err != nil {
		return err
	}
	store.Set(settings.CurrentSkinKey, s.Path())
	return settings.Save(a.fs, path, store)
}

// recordHistory appends to the apply-history database when one is
// configured. History failures never fail an apply.
func (a *App) recordHistory(ctx context.Context, s skin.Skin) {
	if a.statePath == "" {
		return
	}
	log := logging.Get(ctx)

	manager, err := state.NewManager(a.statePath)
	if err != nil {
		log.Warn().Err(err).Msg("failed to open apply history")
		return
	}
	defer func() { _ = manager.Close() }()

	if err := manager.RecordApply(ctx, s.Package, s.Name); err != nil {
		log.Warn().Err(err).Msg("failed to record apply history")
	}
}
