package skin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
)

// UserStore reads and writes the single well-known skins file owned by the
// User package. Writes preserve every entry they do not touch.
type UserStore struct {
	fs   afero.Fs
	root string
}

// NewUserStore creates a user skins store under the given packages root.
func NewUserStore(fs afero.Fs, root string) *UserStore {
	return &UserStore{fs: fs, root: root}
}

// Path returns the location of the user skins file.
func (u *UserStore) Path() string {
	return filepath.Join(u.root, UserPackage, UserSkinsFile)
}

// Load reads every entry from the user skins file. A missing file yields an
// empty map.
func (u *UserStore) Load() (map[string]Data, error) {
	raw, err := afero.ReadFile(u.fs, u.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Data{}, nil
		}
		return nil, fmt.Errorf("failed to read user skins file: %w", err)
	}

	var entries map[string]Data
	if err := json.Unmarshal(jsonc.ToJSON(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse user skins file: %w", err)
	}
	if entries == nil {
		entries = map[string]Data{}
	}
	return entries, nil
}

// Names returns the sorted names of all saved user skins.
func (u *UserStore) Names() ([]string, error) {
	entries, err := u.Load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Save writes (or overwrites) the skin under name, keeping all other
// entries intact.
func (u *UserStore) Save(name string, data Data) error {
	entries, err := u.Load()
	if err != nil {
		return err
	}
	entries[name] = data
	return u.write(entries)
}

// Delete removes the named entry. A missing name is reported as
// ErrSkinNotFound rather than silently ignored.
func (u *UserStore) Delete(name string) error {
	entries, err := u.Load()
	if err != nil {
		return err
	}
	if _, ok := entries[name]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrSkinNotFound, UserPackage, name)
	}
	delete(entries, name)
	return u.write(entries)
}

func (u *UserStore) write(entries map[string]Data) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user skins: %w", err)
	}

	path := u.Path()
	if err := u.fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create user package directory: %w", err)
	}
	if err := afero.WriteFile(u.fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write user skins file: %w", err)
	}
	return nil
}
