package models

import (
	"encoding/json"
	"sort"
)

// localeFallbackChain is the order tried after the requested locale itself.
var localeFallbackChain = []string{"en", "et", "ru"}

// LocalizedText maps locale codes ("en", "et", "ru") to display strings.
// The upstream catalog is inconsistent: some fields arrive as plain strings,
// some as locale objects, so unmarshalling accepts both.
type LocalizedText map[string]string

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = LocalizedText{"en": s}
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(LocalizedText, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	*t = out
	return nil
}

// Resolve returns the display string for locale, falling back through
// en, et, ru and finally the first available value. Empty when no value exists.
func (t LocalizedText) Resolve(locale string) string {
	if len(t) == 0 {
		return ""
	}
	if v := t[locale]; v != "" {
		return v
	}
	for _, l := range localeFallbackChain {
		if v := t[l]; v != "" {
			return v
		}
	}
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if t[k] != "" {
			return t[k]
		}
	}
	return ""
}

// ResolveQuery returns the string search and name-sort operate on: the
// requested locale, then en, then empty. Unlike Resolve, locales beyond
// that pair are never consulted, so an item whose title exists only in an
// unrelated locale stays out of query results.
func (t LocalizedText) ResolveQuery(locale string) string {
	if len(t) == 0 {
		return ""
	}
	if v := t[locale]; v != "" {
		return v
	}
	return t["en"]
}

// ImageList normalizes the upstream "images" field, which is sometimes a
// single URL string and sometimes an array of URLs.
type ImageList []string

func (l *ImageList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = ImageList{s}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*l = ImageList(arr)
	return nil
}

// CategoryRef is the category reference embedded in catalog items.
type CategoryRef struct {
	ID   string        `json:"_id"`
	Name LocalizedText `json:"name"`
	Slug string        `json:"slug"`
}

// SubcategoryRef is the subcategory reference embedded in catalog items.
type SubcategoryRef struct {
	ID             string        `json:"_id"`
	Name           LocalizedText `json:"name"`
	Slug           string        `json:"slug"`
	ParentCategory string        `json:"parentCategory"`
}

// Category is the deduplicated projection collected from item references.
type Category struct {
	ID   string        `json:"_id"`
	Name LocalizedText `json:"name"`
	Slug string        `json:"slug"`
}

// Subcategory additionally records the owning category's id.
type Subcategory struct {
	ID             string        `json:"_id"`
	Name           LocalizedText `json:"name"`
	Slug           string        `json:"slug"`
	ParentCategory string        `json:"parentCategory"`
}

// CatalogItem covers both item variants. Food items carry a localized Title
// and Description; beverages carry a flat Name plus drink-specific fields.
// IsDrink, CategoryID and SubcategoryID are derived by the extractors and
// never come from the wire.
type CatalogItem struct {
	ID          string          `json:"_id"`
	Slug        string          `json:"slug"`
	Price       float64         `json:"price"`
	Images      ImageList       `json:"images"`
	Category    *CategoryRef    `json:"category,omitempty"`
	Subcategory *SubcategoryRef `json:"subcategory,omitempty"`

	Title       LocalizedText `json:"title,omitempty"`
	Description LocalizedText `json:"description,omitempty"`

	Name        string        `json:"name,omitempty"`
	Volume      string        `json:"volume,omitempty"`
	Degree      float64       `json:"degree,omitempty"`
	IsAlcoholic bool          `json:"isAlcoholic,omitempty"`
	Region      LocalizedText `json:"region,omitempty"`
	Color       LocalizedText `json:"color,omitempty"`

	IsDrink       bool   `json:"isDrink"`
	CategoryID    string `json:"categoryId,omitempty"`
	SubcategoryID string `json:"subcategoryId,omitempty"`
}

// DisplayName resolves the item's user-facing name: the flat Name for
// beverages, the localized Title for food.
func (i CatalogItem) DisplayName(locale string) string {
	if i.IsDrink {
		return i.Name
	}
	return i.Title.Resolve(locale)
}

// RawCatalogPayload is the combined response of the upstream catalog
// endpoint. It is never mutated after a fetch.
type RawCatalogPayload struct {
	Success  bool          `json:"success"`
	Products []CatalogItem `json:"products"`
	Alkohols []CatalogItem `json:"alkohols"`
	Error    string        `json:"error,omitempty"`
}
