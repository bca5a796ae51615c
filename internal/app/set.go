package app

import (
	"context"
	"fmt"

	"github.com/wizzomafizzo/skins/internal/skin"
	"github.com/wizzomafizzo/skins/internal/tui"
)

// SetSkin applies a skin. With both package and name it applies directly;
// otherwise it opens the picker, filtered by pkg when given. Cancelling the
// picker leaves every target settings file untouched.
func (a *App) SetSkin(ctx context.Context, pkg, name string) error {
	registry, err := a.Scan(ctx)
	if err != nil {
		return err
	}

	if pkg != "" && name != "" {
		s, err := registry.Resolve(pkg, name)
		if err != nil {
			return err
		}
		return a.ApplySkin(ctx, s)
	}

	var candidates []skin.Skin
	if pkg != "" {
		candidates = registry.ByPackage(pkg)
	} else {
		candidates = registry.All()
	}
	if len(candidates) == 0 {
		_, _ = fmt.Fprintln(a.out, "No skins found")
		return nil
	}

	options := make([]tui.Option, len(candidates))
	for i, s := range candidates {
		options[i] = tui.Option{Title: s.Name, Description: s.Package}
	}

	index, ok, err := a.pick("Select skin", options)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return a.ApplySkin(ctx, candidates[index])
}
