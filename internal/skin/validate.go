package skin

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/skins/internal/settings"
)

// linterSuffix marks color schemes patched by lint plugins. A skin must
// reference the pristine scheme so the plugin can re-patch it.
const linterSuffix = " (SL)"

// Validator checks skins against the resources available under a packages
// root. A valid skin names at least a theme and a color scheme, and both
// must exist as resources.
type Validator struct {
	fs   afero.Fs
	root string
}

// NewValidator creates a validator over the given packages root.
func NewValidator(fs afero.Fs, root string) *Validator {
	return &Validator{fs: fs, root: root}
}

// Validate checks the minimum requirements of a skin. When the stored color
// scheme path no longer exists but a resource with the same base name does,
// the path is rewritten in place to the first match.
func (v *Validator) Validate(data Data) error {
	theme := data.Theme()
	if theme == "" {
		return fmt.Errorf("%w: missing Preferences theme", ErrInvalidSkin)
	}
	scheme := data.ColorScheme()
	if scheme == "" {
		return fmt.Errorf("%w: missing Preferences color_scheme", ErrInvalidSkin)
	}

	themes, err := FindResources(v.fs, v.root, path.Base(theme))
	if err != nil {
		return err
	}
	if len(themes) == 0 {
		return fmt.Errorf("%w: theme %q not found", ErrInvalidSkin, theme)
	}

	dir, base := path.Split(scheme)
	name := strings.ReplaceAll(base, linterSuffix, "")
	schemes, err := FindResources(v.fs, v.root, name)
	if err != nil {
		return err
	}
	if len(schemes) == 0 {
		return fmt.Errorf("%w: color scheme %q not found", ErrInvalidSkin, scheme)
	}

	// Keep the stored path when it is a pristine, existing resource.
	for _, found := range schemes {
		if found == scheme {
			return nil
		}
	}

	// Stored path is stale or linter-patched; heal it, preferring the
	// pristine scheme in the stored directory over the first match.
	healed := schemes[0]
	exact := dir + name
	for _, found := range schemes {
		if found == exact {
			healed = exact
			break
		}
	}
	data[settings.Preferences]["color_scheme"] = healed
	return nil
}
