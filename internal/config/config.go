// Package config loads the skins.yml tool configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration: where the packages live and which
// settings the save command captures.
//
// The config is parsed with yaml.v3 rather than a config framework because
// target names inside skin-template are case-sensitive file names and must
// survive decoding untouched.
type Config struct {
	// SkinTemplate maps a target settings file name to the keys captured
	// when saving the current look as a user skin. Each value is a list of
	// keys, a single key, or a nested mapping for structured settings.
	SkinTemplate map[string]any `yaml:"skin-template,omitempty"`

	// Packages is the packages root directory scanned for *.skins files,
	// resources and target settings files.
	Packages string `yaml:"packages,omitempty"`
}

// Load reads the config file at path. A missing file yields the defaults;
// any other read or parse failure is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML loads config from YAML bytes.
func LoadFromYAML(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs config validation.
func (c *Config) Validate() error {
	if c.Packages == "" {
		return errors.New("packages directory is required and cannot be empty")
	}
	if len(c.SkinTemplate) == 0 {
		return errors.New("skin-template must name at least one target settings file")
	}

	for target, keys := range c.SkinTemplate {
		if target == "" {
			return errors.New("skin-template target names cannot be empty")
		}
		if err := validateTemplateValue(target, keys); err != nil {
			return err
		}
	}
	return nil
}

func validateTemplateValue(target string, value any) error {
	switch v := value.(type) {
	case string:
		if v == "" {
			return fmt.Errorf("skin-template entry for %q has an empty key", target)
		}
	case []any:
		for _, key := range v {
			name, ok := key.(string)
			if !ok || name == "" {
				return fmt.Errorf("skin-template entry for %q must list key names", target)
			}
		}
	case []string:
		for _, name := range v {
			if name == "" {
				return fmt.Errorf("skin-template entry for %q has an empty key", target)
			}
		}
	case map[string]any:
		for sub, nested := range v {
			if err := validateTemplateValue(target+"."+sub, nested); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("skin-template entry for %q must be a key, a list of keys or a mapping", target)
	}
	return nil
}
