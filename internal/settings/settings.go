// Package settings provides programmatic access to target settings files.
//
// A target settings file is a JSON-with-comments document owned by some
// installed package (Preferences.settings, SublimeLinter.settings, ...).
// Skins mutate these files but never own them.
package settings

import "path/filepath"

// Well-known names within the packages tree.
const (
	// Preferences is the target holding the editor's global settings.
	Preferences = "Preferences"

	// Ext is the file extension of a target settings file.
	Ext = ".settings"

	// UserPackage is the package directory holding the live target
	// settings files and user-saved skins.
	UserPackage = "User"

	// CurrentSkinKey is the Preferences key recording the applied skin
	// as "<package>/<name>".
	CurrentSkinKey = "skin"
)

// TargetPath returns the live settings file for a target under the
// packages root.
func TargetPath(root, target string) string {
	return filepath.Join(root, UserPackage, target+Ext)
}

// Store is the decoded content of one target settings file. Values carry
// whatever encoding/json produced: string, float64, bool, map[string]any
// or []any. A nil value never survives a merge; it is the delete sentinel.
type Store map[string]any

// Get returns the value stored under key, or nil if absent.
func (s Store) Get(key string) any {
	return s[key]
}

// Set stores value under key, overwriting any previous value.
func (s Store) Set(key string, value any) {
	s[key] = value
}

// Erase removes key from the store. Removing an absent key is a no-op.
func (s Store) Erase(key string) {
	delete(s, key)
}

// Merge applies overrides to the store key by key. A nil override deletes
// the key, a map override merges recursively into an existing sub-object,
// anything else sets the key.
func (s Store) Merge(overrides map[string]any) {
	mergeInto(s, overrides)
}

func mergeInto(dst map[string]any, overrides map[string]any) {
	for key, value := range overrides {
		if value == nil {
			delete(dst, key)
			continue
		}

		if sub, ok := value.(map[string]any); ok {
			if existing, ok := dst[key].(map[string]any); ok {
				mergeInto(existing, sub)
				continue
			}
			merged := make(map[string]any, len(sub))
			mergeInto(merged, sub)
			dst[key] = merged
			continue
		}

		dst[key] = value
	}
}
