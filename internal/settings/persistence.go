package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// Load reads a settings file and decodes it. Settings files may carry
// comments and trailing commas; both are stripped before decoding.
// A missing file yields an empty store so callers can treat every target
// as open-or-create.
func Load(fs afero.Fs, path string) (Store, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	store, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return store, nil
}

// Decode parses JSON-with-comments bytes into a store. Empty input decodes
// to an empty store.
func Decode(data []byte) (Store, error) {
	plain := jsonc.ToJSON(data)
	if len(plain) == 0 {
		return Store{}, nil
	}

	var store Store
	if err := json.Unmarshal(plain, &store); err != nil {
		return nil, fmt.Errorf("failed to decode settings JSON: %w", err)
	}
	if store == nil {
		store = Store{}
	}
	return store, nil
}

// Save persists the store as indented JSON, creating parent directories as
// needed. Comments from the original file are not preserved.
func Save(fs afero.Fs, path string, store Store) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings to JSON: %w", err)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory for %s: %w", path, err)
	}

	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", path, err)
	}
	return nil
}
