package app

import (
	"context"
	"fmt"
	"io"

	"github.com/wizzomafizzo/skins/internal/output"
	"github.com/wizzomafizzo/skins/internal/skin"
)

// List writes the available skins to w in the requested format, filtered by
// pkg when given.
func (a *App) List(ctx context.Context, pkg string, format output.FormatType, w io.Writer) error {
	registry, err := a.Scan(ctx)
	if err != nil {
		return err
	}

	var skins []skin.Skin
	if pkg != "" {
		skins = registry.ByPackage(pkg)
	} else {
		skins = registry.All()
	}

	if len(skins) == 0 && format == output.FormatPlain {
		_, _ = fmt.Fprintln(w, "No skins found")
		return nil
	}

	return output.NewFormatter(format).Format(w, skins)
}
