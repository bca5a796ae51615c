package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSetsAndOverwrites(t *testing.T) {
	t.Parallel()

	store := Store{"theme": "Old.theme", "font_size": float64(12)}
	store.Merge(map[string]any{
		"theme":        "New.theme",
		"color_scheme": "Packages/Color/New.tmTheme",
	})

	assert.Equal(t, "New.theme", store.Get("theme"))
	assert.Equal(t, "Packages/Color/New.tmTheme", store.Get("color_scheme"))
	assert.Equal(t, float64(12), store.Get("font_size"))
}

func TestMergeNilDeletesKey(t *testing.T) {
	t.Parallel()

	store := Store{"theme_accent_green": true, "theme": "A.theme"}
	store.Merge(map[string]any{"theme_accent_green": nil})

	_, exists := store["theme_accent_green"]
	assert.False(t, exists, "delete sentinel should remove the key")
	assert.Equal(t, "A.theme", store.Get("theme"))
}

func TestMergeNilOnAbsentKeyIsNoop(t *testing.T) {
	t.Parallel()

	store := Store{"theme": "A.theme"}
	store.Merge(map[string]any{"missing": nil})

	assert.Len(t, store, 1)
}

func TestMergeFalsyValuesAreStored(t *testing.T) {
	t.Parallel()

	// Only nil deletes; false, zero and empty string are legitimate values.
	store := Store{}
	store.Merge(map[string]any{
		"draw_white_space": false,
		"margin":           float64(0),
		"font_face":        "",
	})

	assert.Equal(t, false, store.Get("draw_white_space"))
	assert.Equal(t, float64(0), store.Get("margin"))
	assert.Equal(t, "", store.Get("font_face"))
}

func TestMergeNestedObjectsKeyByKey(t *testing.T) {
	t.Parallel()

	store := Store{
		"rulers": map[string]any{"color": "red", "width": float64(1)},
	}
	store.Merge(map[string]any{
		"rulers": map[string]any{"color": "blue", "style": "dotted"},
	})

	rulers, ok := store.Get("rulers").(map[string]any)
	if !ok {
		t.Fatalf("expected nested map, got %T", store.Get("rulers"))
	}
	assert.Equal(t, "blue", rulers["color"])
	assert.Equal(t, float64(1), rulers["width"])
	assert.Equal(t, "dotted", rulers["style"])
}

func TestMergeNestedDeleteSentinel(t *testing.T) {
	t.Parallel()

	store := Store{
		"rulers": map[string]any{"color": "red", "width": float64(1)},
	}
	store.Merge(map[string]any{
		"rulers": map[string]any{"color": nil},
	})

	rulers, _ := store.Get("rulers").(map[string]any)
	_, exists := rulers["color"]
	assert.False(t, exists)
	assert.Equal(t, float64(1), rulers["width"])
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()

	overrides := map[string]any{
		"theme":    "New.theme",
		"obsolete": nil,
		"rulers":   map[string]any{"color": "blue"},
	}

	first := Store{"obsolete": true, "font_size": float64(12)}
	first.Merge(overrides)

	second := Store{"obsolete": true, "font_size": float64(12)}
	second.Merge(overrides)
	second.Merge(overrides)

	assert.Equal(t, first, second)
}

func TestEraseAbsentKeyIsNoop(t *testing.T) {
	t.Parallel()

	store := Store{}
	store.Erase("nope")
	assert.Empty(t, store)
}
