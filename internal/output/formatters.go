package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/wizzomafizzo/skins/internal/skin"
	"gopkg.in/yaml.v3"
)

// PlainFormatter writes one "package/name" line per skin.
type PlainFormatter struct{}

// Format writes skins as plain text lines.
func (*PlainFormatter) Format(w io.Writer, skins []skin.Skin) error {
	for _, s := range skins {
		if _, err := fmt.Fprintln(w, s.Path()); err != nil {
			return fmt.Errorf("failed to write listing: %w", err)
		}
	}
	return nil
}

// JSONFormatter writes the listing as an indented JSON array.
type JSONFormatter struct{}

// Format writes skins as JSON.
func (*JSONFormatter) Format(w io.Writer, skins []skin.Skin) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entries(skins)); err != nil {
		return fmt.Errorf("failed to encode listing as JSON: %w", err)
	}
	return nil
}

// YAMLFormatter writes the listing as a YAML sequence.
type YAMLFormatter struct{}

// Format writes skins as YAML.
func (*YAMLFormatter) Format(w io.Writer, skins []skin.Skin) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()
	if err := encoder.Encode(entries(skins)); err != nil {
		return fmt.Errorf("failed to encode listing as YAML: %w", err)
	}
	return nil
}
