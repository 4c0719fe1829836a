package catalog

import (
	"github.com/kroogliy/maitsevcatering-sub000/models"
)

// Extractors derive the queryable collections from a raw catalog payload.
// They are pure: no I/O, never panic on missing fields, and a nil payload
// always yields an empty slice.

// ExtractProducts tags every food item with IsDrink=false and flattens the
// embedded category/subcategory ids. Missing references leave empty ids.
func ExtractProducts(p *models.RawCatalogPayload) []models.CatalogItem {
	if p == nil {
		return []models.CatalogItem{}
	}
	return extractItems(p.Products, false)
}

// ExtractAlkohols tags every beverage with IsDrink=true.
func ExtractAlkohols(p *models.RawCatalogPayload) []models.CatalogItem {
	if p == nil {
		return []models.CatalogItem{}
	}
	return extractItems(p.Alkohols, true)
}

// ExtractAllItems concatenates products then alkohols. That order is the
// default display order before any explicit sort.
func ExtractAllItems(p *models.RawCatalogPayload) []models.CatalogItem {
	products := ExtractProducts(p)
	alkohols := ExtractAlkohols(p)
	all := make([]models.CatalogItem, 0, len(products)+len(alkohols))
	all = append(all, products...)
	return append(all, alkohols...)
}

func extractItems(src []models.CatalogItem, isDrink bool) []models.CatalogItem {
	out := make([]models.CatalogItem, 0, len(src))
	for _, item := range src {
		item.IsDrink = isDrink
		item.CategoryID = ""
		item.SubcategoryID = ""
		if item.Category != nil {
			item.CategoryID = item.Category.ID
		}
		if item.Subcategory != nil {
			item.SubcategoryID = item.Subcategory.ID
		}
		out = append(out, item)
	}
	return out
}

// ExtractCategories collects the deduplicated categories referenced by any
// item in either list. Dedup policy: when the same id appears on multiple
// items the last-scanned reference wins; first-seen order is kept.
func ExtractCategories(p *models.RawCatalogPayload) []models.Category {
	out := []models.Category{}
	if p == nil {
		return out
	}
	seen := make(map[string]int)
	scan := func(items []models.CatalogItem) {
		for _, item := range items {
			if item.Category == nil || item.Category.ID == "" {
				continue
			}
			cat := models.Category{
				ID:   item.Category.ID,
				Name: item.Category.Name,
				Slug: item.Category.Slug,
			}
			if idx, ok := seen[cat.ID]; ok {
				out[idx] = cat
				continue
			}
			seen[cat.ID] = len(out)
			out = append(out, cat)
		}
	}
	scan(p.Products)
	scan(p.Alkohols)
	return out
}

// ExtractSubcategories mirrors ExtractCategories for subcategory references,
// carrying ParentCategory from the last item that supplied the id.
func ExtractSubcategories(p *models.RawCatalogPayload) []models.Subcategory {
	out := []models.Subcategory{}
	if p == nil {
		return out
	}
	seen := make(map[string]int)
	scan := func(items []models.CatalogItem) {
		for _, item := range items {
			if item.Subcategory == nil || item.Subcategory.ID == "" {
				continue
			}
			sub := models.Subcategory{
				ID:             item.Subcategory.ID,
				Name:           item.Subcategory.Name,
				Slug:           item.Subcategory.Slug,
				ParentCategory: item.Subcategory.ParentCategory,
			}
			if idx, ok := seen[sub.ID]; ok {
				out[idx] = sub
				continue
			}
			seen[sub.ID] = len(out)
			out = append(out, sub)
		}
	}
	scan(p.Products)
	scan(p.Alkohols)
	return out
}
