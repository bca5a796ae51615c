package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/wizzomafizzo/skins/internal/prompt"
	"github.com/wizzomafizzo/skins/internal/skin"
	"github.com/wizzomafizzo/skins/internal/tui"
)

const saveAsNewLabel = "Save as new skin..."

// SaveUserSkin captures the current settings named by the skin template and
// persists them under name in the user skins file. With an empty name the
// user picks between saving as a new skin or updating an existing one.
func (a *App) SaveUserSkin(ctx context.Context, name string) error {
	if name == "" {
		chosen, ok, err := a.pickSaveName()
		if err != nil || !ok {
			return err
		}
		name = chosen
	}

	captured, err := skin.Capture(a.fs, a.cfg.Packages, a.cfg.SkinTemplate)
	if err != nil {
		return err
	}

	validator := skin.NewValidator(a.fs, a.cfg.Packages)
	if err := validator.Validate(captured); err != nil {
		return fmt.Errorf("cannot save skin %q: %w", name, err)
	}

	if err := a.userStore().Save(name, captured); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Saved skin %s\n", name)
	return nil
}

// pickSaveName offers "save as new" plus every existing user skin to
// update. ok is false when the user cancelled.
func (a *App) pickSaveName() (name string, ok bool, err error) {
	names, err := a.userStore().Names()
	if err != nil {
		return "", false, err
	}

	options := make([]tui.Option, 0, len(names)+1)
	options = append(options, tui.Option{
		Title:       saveAsNewLabel,
		Description: "Enter the name in the following prompt",
	})
	for _, existing := range names {
		options = append(options, tui.Option{
			Title:       existing,
			Description: "Update existing skin",
		})
	}

	index, ok, err := a.pick("Save skin", options)
	if err != nil || !ok {
		return "", false, err
	}
	if index > 0 {
		return names[index-1], true, nil
	}

	entered, err := a.input("Enter skin name:")
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return "", false, nil
		}
		return "", false, err
	}
	if entered == "" {
		return "", false, nil
	}
	return entered, true, nil
}
