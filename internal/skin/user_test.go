package skin

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/skins/internal/testutil"
)

func TestUserStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	store := NewUserStore(afero.NewMemMapFs(), packagesRoot)
	entries, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUserStoreSavePreservesOtherEntries(t *testing.T) {
	t.Parallel()

	fs := newPackagesFs(t)
	store := NewUserStore(fs, packagesRoot)

	require.NoError(t, store.Save("Second", validData()))

	entries, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Contains(t, entries, "My Preset")
	assert.Contains(t, entries, "Second")
}

func TestUserStoreSaveOverwritesSameName(t *testing.T) {
	t.Parallel()

	fs := newPackagesFs(t)
	store := NewUserStore(fs, packagesRoot)

	updated := validData()
	updated["Preferences"]["font_size"] = float64(14)
	require.NoError(t, store.Save("My Preset", updated))

	entries, err := store.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(14), entries["My Preset"]["Preferences"]["font_size"])
}

func TestUserStoreDeleteRemovesOnlyNamedSkin(t *testing.T) {
	t.Parallel()

	fs := newPackagesFs(t)
	store := NewUserStore(fs, packagesRoot)
	require.NoError(t, store.Save("Second", validData()))

	require.NoError(t, store.Delete("My Preset"))

	entries, err := store.Load()
	require.NoError(t, err)
	assert.NotContains(t, entries, "My Preset")
	assert.Contains(t, entries, "Second")
}

func TestUserStoreDeleteMissingNameFails(t *testing.T) {
	t.Parallel()

	store := NewUserStore(newPackagesFs(t), packagesRoot)
	err := store.Delete("Never Saved")
	assert.True(t, errors.Is(err, ErrSkinNotFound))
}

func TestUserStoreDeleteDoesNotAffectOtherPackages(t *testing.T) {
	t.Parallel()

	fs := newPackagesFs(t)
	store := NewUserStore(fs, packagesRoot)
	require.NoError(t, store.Delete("My Preset"))

	registry, err := Scan(testutil.NewSilentContext(t), fs, packagesRoot)
	require.NoError(t, err)

	assert.Empty(t, registry.ByPackage(UserPackage))
	assert.Len(t, registry.ByPackage("Nice Theme"), 2)
}

func TestUserStoreNamesSorted(t *testing.T) {
	t.Parallel()

	fs := newPackagesFs(t)
	store := NewUserStore(fs, packagesRoot)
	require.NoError(t, store.Save("Alpha", validData()))
	require.NoError(t, store.Save("Zulu", validData()))

	names, err := store.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "My Preset", "Zulu"}, names)
}
