package skin

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"github.com/wizzomafizzo/skins/internal/logging"
)

// Registry holds every valid skin discovered across all scanned packages at
// one point in time. It is rebuilt per invocation; callers re-scan to pick
// up filesystem changes.
type Registry struct {
	byKey map[string]Skin
	skins []Skin
}

// Scan walks the packages root for *.skins files and aggregates their
// entries into a registry. A file that fails to parse is logged and
// skipped; skins that fail validation are logged and excluded. Duplicate
// names within one package keep the first occurrence.
func Scan(ctx context.Context, fs afero.Fs, root string) (*Registry, error) {
	log := logging.Get(ctx)

	files, err := FindResources(fs, root, "*"+Ext)
	if err != nil {
		return nil, err
	}

	validator := NewValidator(fs, root)
	registry := &Registry{byKey: make(map[string]Skin)}

	for _, resource := range files {
		pkg := resourcePackage(resource)
		if pkg == "" {
			continue
		}

		entries, err := decodeSkinsFile(fs, filePath(root, resource))
		if err != nil {
			log.Warn().Err(err).Str("file", resource).
				Msg("skipping unparsable skins file")
			continue
		}

		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			data := entries[name]
			if err := validator.Validate(data); err != nil {
				log.Warn().Err(err).Str("package", pkg).Str("skin", name).
					Msg("skipping invalid skin")
				continue
			}
			registry.add(Skin{Package: pkg, Name: name, Data: data})
		}
	}

	return registry, nil
}

// decodeSkinsFile parses one skins file: a JSON-with-comments mapping of
// skin name to per-target settings.
func decodeSkinsFile(fs afero.Fs, path string) (map[string]Data, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skins file %s: %w", path, err)
	}

	var entries map[string]Data
	if err := json.Unmarshal(jsonc.ToJSON(raw), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse skins file %s: %w", path, err)
	}
	return entries, nil
}

func (r *Registry) add(s Skin) {
	key := s.Path()
	if _, exists := r.byKey[key]; exists {
		return
	}
	r.byKey[key] = s
	r.skins = append(r.skins, s)
}

// Len reports the number of skins in the registry.
func (r *Registry) Len() int {
	return len(r.skins)
}

// Resolve returns the skin registered under (pkg, name).
func (r *Registry) Resolve(pkg, name string) (Skin, error) {
	s, ok := r.byKey[pkg+"/"+name]
	if !ok {
		return Skin{}, fmt.Errorf("%w: %s/%s", ErrSkinNotFound, pkg, name)
	}
	return s, nil
}

// ByPackage returns all skins owned by pkg, ordered by name.
func (r *Registry) ByPackage(pkg string) []Skin {
	var out []Skin
	for _, s := range r.skins {
		if s.Package == pkg {
			out = append(out, s)
		}
	}
	sortSkins(out)
	return out
}

// All returns every skin in display order: the User package first, then
// packages alphabetically, names alphabetically within a package.
// Same-named skins from different packages stay distinct entries.
func (r *Registry) All() []Skin {
	out := make([]Skin, len(r.skins))
	copy(out, r.skins)
	sortSkins(out)
	return out
}

func sortSkins(skins []Skin) {
	sort.SliceStable(skins, func(i, j int) bool {
		a, b := skins[i], skins[j]
		if a.Package != b.Package {
			if a.Package == UserPackage {
				return true
			}
			if b.Package == UserPackage {
				return false
			}
			return a.Package < b.Package
		}
		return a.Name < b.Name
	})
}
