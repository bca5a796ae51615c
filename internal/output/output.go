// Package output provides output formatters for skin listings.
package output

import (
	"io"

	"github.com/wizzomafizzo/skins/internal/skin"
)

// Formatter formats skin listings for output.
type Formatter interface {
	// Format writes the formatted listing to the writer.
	Format(w io.Writer, skins []skin.Skin) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatPlain:
		fallthrough
	default:
		return &PlainFormatter{}
	}
}

// entry is the serialized form of one listing row.
type entry struct {
	Package string `json:"package" yaml:"package"`
	Name    string `json:"name"    yaml:"name"`
}

func entries(skins []skin.Skin) []entry {
	out := make([]entry, len(skins))
	for i, s := range skins {
		out[i] = entry{Package: s.Package, Name: s.Name}
	}
	return out
}
