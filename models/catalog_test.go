package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedTextResolve(t *testing.T) {
	tests := []struct {
		name   string
		text   LocalizedText
		locale string
		want   string
	}{
		{"exact locale", LocalizedText{"en": "Khachapuri", "ru": "Хачапури"}, "ru", "Хачапури"},
		{"falls back to en", LocalizedText{"en": "Khachapuri", "et": "Hatšapuri"}, "ru", "Khachapuri"},
		{"falls back to et when en missing", LocalizedText{"et": "Hatšapuri"}, "ru", "Hatšapuri"},
		{"first available when chain missing", LocalizedText{"fi": "Hatsapuri"}, "ru", "Hatsapuri"},
		{"empty string treated as missing", LocalizedText{"ru": "", "en": "Khachapuri"}, "ru", "Khachapuri"},
		{"nil map", nil, "en", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.Resolve(tt.locale))
		})
	}
}

func TestLocalizedTextResolveQuery(t *testing.T) {
	tests := []struct {
		name   string
		text   LocalizedText
		locale string
		want   string
	}{
		{"exact locale", LocalizedText{"en": "Khachapuri", "ru": "Хачапури"}, "ru", "Хачапури"},
		{"falls back to en", LocalizedText{"en": "Khachapuri", "et": "Hatšapuri"}, "ru", "Khachapuri"},
		{"never reaches other locales", LocalizedText{"et": "Hatšapuri"}, "ru", ""},
		{"empty en stays empty", LocalizedText{"en": "", "et": "Hatšapuri"}, "ru", ""},
		{"nil map", nil, "en", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.ResolveQuery(tt.locale))
		})
	}
}

func TestLocalizedTextUnmarshal(t *testing.T) {
	var fromObject LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`{"en":"Red","ru":"Красное"}`), &fromObject))
	assert.Equal(t, "Red", fromObject.Resolve("en"))
	assert.Equal(t, "Красное", fromObject.Resolve("ru"))

	// Upstream sometimes sends a bare string instead of a locale object.
	var fromString LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`"Semi-sweet"`), &fromString))
	assert.Equal(t, "Semi-sweet", fromString.Resolve("en"))

	// Non-string values inside the object are dropped, not fatal.
	var mixed LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`{"en":"Ok","weird":5}`), &mixed))
	assert.Equal(t, "Ok", mixed.Resolve("en"))

	var null LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.Empty(t, null)
}

func TestImageListUnmarshal(t *testing.T) {
	var single ImageList
	require.NoError(t, json.Unmarshal([]byte(`"a.jpg"`), &single))
	assert.Equal(t, ImageList{"a.jpg"}, single)

	var many ImageList
	require.NoError(t, json.Unmarshal([]byte(`["a.jpg","b.jpg"]`), &many))
	assert.Equal(t, ImageList{"a.jpg", "b.jpg"}, many)

	var null ImageList
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.Nil(t, null)
}

func TestCatalogItemDisplayName(t *testing.T) {
	food := CatalogItem{Title: LocalizedText{"en": "Khinkali", "ru": "Хинкали"}}
	assert.Equal(t, "Хинкали", food.DisplayName("ru"))
	assert.Equal(t, "Khinkali", food.DisplayName("et"))

	drink := CatalogItem{IsDrink: true, Name: "Saperavi", Title: LocalizedText{"en": "ignored"}}
	assert.Equal(t, "Saperavi", drink.DisplayName("ru"))
}
