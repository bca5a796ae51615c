package skin

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/skins/internal/settings"
)

// Template describes which target-file/key combinations to capture when
// saving the current look as a skin. Each entry maps a target settings file
// name to a list of keys, a single key, or a nested mapping for structured
// settings:
//
//	Preferences: [color_scheme, theme]
//	SublimeLinter:
//	  styles: [mark_style]
type Template map[string]any

// Capture reads the current value of every templated key from the live
// target settings stores under root and assembles them into skin data.
// Targets whose capture comes back empty are dropped.
func Capture(fs afero.Fs, root string, tmpl Template) (Data, error) {
	captured := Data{}
	for target, keys := range tmpl {
		store, err := settings.Load(fs, settings.TargetPath(root, target))
		if err != nil {
			return nil, fmt.Errorf("failed to capture %s: %w", target, err)
		}

		value, ok := filterKeys(map[string]any(store), keys).(map[string]any)
		if !ok || len(value) == 0 {
			continue
		}
		captured[target] = value
	}
	return captured, nil
}

// filterKeys transforms src by the stylesheet-like filter: a map recurses
// per key, a list picks the named keys, a string picks a single key. Absent
// keys and empty sub-objects are dropped.
func filterKeys(src, filter any) any {
	node, ok := src.(map[string]any)
	if !ok || len(node) == 0 {
		return nil
	}

	switch f := filter.(type) {
	case map[string]any:
		out := map[string]any{}
		for key, sub := range f {
			if value := filterKeys(node[key], sub); value != nil {
				out[key] = value
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []any:
		out := map[string]any{}
		for _, key := range f {
			name, ok := key.(string)
			if !ok {
				continue
			}
			if value, ok := node[name]; ok {
				out[name] = value
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case []string:
		keys := make([]any, len(f))
		for i, key := range f {
			keys[i] = key
		}
		return filterKeys(src, keys)
	case string:
		if value, ok := node[f]; ok {
			return map[string]any{f: value}
		}
	}
	return nil
}
