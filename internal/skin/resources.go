package skin

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// resourcePrefix roots every resource path, mirroring how skins files
// reference theme and color scheme files.
const resourcePrefix = "Packages"

// FindResources walks the packages root and returns the resource paths of
// all files whose base name matches pattern, in the form
// "Packages/<package>/<path>". Results are sorted for deterministic
// listings. Pattern syntax is path.Match.
func FindResources(fsys afero.Fs, root, pattern string) ([]string, error) {
	var found []string

	err := afero.Walk(fsys, root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		matched, matchErr := path.Match(pattern, info.Name())
		if matchErr != nil {
			return fmt.Errorf("invalid resource pattern %q: %w", pattern, matchErr)
		}
		if !matched {
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return nil
		}
		found = append(found, resourcePath(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan resources under %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}

// resourcePath converts a root-relative file path to resource form.
func resourcePath(rel string) string {
	return resourcePrefix + "/" + filepath.ToSlash(rel)
}

// resourcePackage extracts the owning package from a resource path, or ""
// when the path has no package component.
func resourcePackage(resource string) string {
	parts := strings.SplitN(resource, "/", 3)
	if len(parts) < 3 || parts[0] != resourcePrefix {
		return ""
	}
	return parts[1]
}

// filePath converts a resource path back to a real path under root.
func filePath(root, resource string) string {
	rel := strings.TrimPrefix(resource, resourcePrefix+"/")
	return filepath.Join(root, filepath.FromSlash(rel))
}
