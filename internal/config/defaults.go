package config

import (
	"github.com/wizzomafizzo/skins/internal/storage"
)

// DefaultConfigFile is the config file name looked up when --config is not
// given.
const DefaultConfigFile = "skins.yml"

// DefaultConfig returns the default skins configuration: the XDG packages
// root and the minimal valid capture template.
func DefaultConfig() *Config {
	return &Config{
		Packages: storage.DefaultPackagesRoot(),
		SkinTemplate: map[string]any{
			"Preferences": []any{"color_scheme", "theme"},
		},
	}
}

// applyDefaults fills unset fields with their defaults. Defaults are applied
// whole, never merged into a partially configured value.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Packages == "" {
		c.Packages = defaults.Packages
	}
	if len(c.SkinTemplate) == 0 {
		c.SkinTemplate = defaults.SkinTemplate
	}
}
