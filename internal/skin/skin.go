// Package skin implements the skin registry: scanning *.skins files across
// package directories, resolving skins by package and name, validating them
// against available resources, and managing the user-owned skins file.
package skin

import (
	"errors"

	"github.com/wizzomafizzo/skins/internal/settings"
)

const (
	// Ext is the file extension of a skins file.
	Ext = ".skins"

	// UserPackage is the package owning user-saved skins.
	UserPackage = settings.UserPackage

	// UserSkinsFile is the well-known file aggregating user-saved skins.
	UserSkinsFile = "Saved Skins.skins"
)

// Sentinel errors surfaced to the command layer.
var (
	ErrSkinNotFound = errors.New("skin not found")
	ErrInvalidSkin  = errors.New("invalid skin")
)

// Data maps a target settings file name to the key/value overrides the skin
// applies to it. A nil value is the delete sentinel.
type Data map[string]map[string]any

// Skin is one named bundle of settings overrides, scoped to the package it
// was found in. Names are unique within a package, not globally.
type Skin struct {
	Data    Data
	Package string
	Name    string
}

// Path returns the "<package>/<name>" form recorded under the skin
// preference key.
func (s Skin) Path() string {
	return s.Package + "/" + s.Name
}

// Theme returns the theme file the skin selects, or "" if absent.
func (d Data) Theme() string {
	theme, _ := d[settings.Preferences]["theme"].(string)
	return theme
}

// ColorScheme returns the color scheme resource the skin selects, or "" if
// absent.
func (d Data) ColorScheme() string {
	scheme, _ := d[settings.Preferences]["color_scheme"].(string)
	return scheme
}
