package app

import (
	"context"
	"fmt"

	"github.com/wizzomafizzo/skins/internal/tui"
)

// DeleteUserSkin removes the named skin from the user skins file. With an
// empty name the user picks from the saved skins. Deleting a name that does
// not exist is an error, not a silent no-op.
func (a *App) DeleteUserSkin(ctx context.Context, name string) error {
	store := a.userStore()

	if name == "" {
		names, err := store.Names()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			_, _ = fmt.Fprintln(a.out, "No user skins saved")
			return nil
		}

		options := make([]tui.Option, len(names))
		for i, existing := range names {
			options[i] = tui.Option{Title: existing, Description: "Delete saved skin"}
		}

		index, ok, err := a.pick("Delete skin", options)
		if err != nil || !ok {
			return err
		}
		name = names[index]
	}

	if err := store.Delete(name); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "Deleted skin %s\n", name)
	return nil
}
