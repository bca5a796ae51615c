package settings

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyStore(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store, err := Load(fs, "/packages/User/Preferences.settings")
	require.NoError(t, err)
	assert.Empty(t, store)
}

func TestLoadStripsComments(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	content := `{
	// color scheme for the dark preset
	"color_scheme": "Packages/Color/Dark.tmTheme",
	"theme": "Dark.theme", // trailing comment
	/* block comment */
	"font_size": 12,
}`
	require.NoError(t, afero.WriteFile(fs,
		"/packages/User/Preferences.settings", []byte(content), 0o600))

	store, err := Load(fs, "/packages/User/Preferences.settings")
	require.NoError(t, err)

	assert.Equal(t, "Packages/Color/Dark.tmTheme", store.Get("color_scheme"))
	assert.Equal(t, "Dark.theme", store.Get("theme"))
	assert.Equal(t, float64(12), store.Get("font_size"))
}

func TestLoadMalformedFileFails(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs,
		"/packages/User/Broken.settings", []byte(`{"theme": `), 0o600))

	_, err := Load(fs, "/packages/User/Broken.settings")
	assert.Error(t, err)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	store := Store{
		"theme":     "Dark.theme",
		"font_size": float64(14),
		"word_wrap": true,
		"rulers":    map[string]any{"width": float64(2)},
	}

	path := "/packages/User/Preferences.settings"
	require.NoError(t, Save(fs, path, store))

	loaded, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, store, loaded)
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, Save(fs, "/deep/nested/dir/X.settings", Store{"a": "b"}))

	exists, err := afero.Exists(fs, "/deep/nested/dir/X.settings")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDecodeEmptyInput(t *testing.T) {
	t.Parallel()

	store, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, store)
}
