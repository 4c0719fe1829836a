package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

func testPayload() *models.RawCatalogPayload {
	georgian := &models.CategoryRef{ID: "cat1", Name: models.LocalizedText{"en": "Georgian"}, Slug: "georgian"}
	bakery := &models.SubcategoryRef{ID: "sub1", Name: models.LocalizedText{"en": "Bakery"}, Slug: "bakery", ParentCategory: "cat1"}
	wine := &models.SubcategoryRef{ID: "sub2", Name: models.LocalizedText{"en": "Wine"}, Slug: "wine", ParentCategory: "cat2"}

	return &models.RawCatalogPayload{
		Success: true,
		Products: []models.CatalogItem{
			{
				ID: "p1", Slug: "khachapuri", Price: 10,
				Title:    models.LocalizedText{"en": "Khachapuri"},
				Category: georgian, Subcategory: bakery,
			},
			{
				ID: "p2", Slug: "khinkali", Price: 8,
				Title: models.LocalizedText{"en": "Khinkali"},
				// no category/subcategory at all
			},
		},
		Alkohols: []models.CatalogItem{
			{
				ID: "a1", Slug: "saperavi", Price: 20, Name: "Saperavi", IsAlcoholic: true,
				Category: &models.CategoryRef{ID: "cat2", Name: models.LocalizedText{"en": "Drinks"}, Slug: "drinks"},
				Subcategory: wine,
			},
		},
	}
}

func TestExtractAllItems_TagsAndCounts(t *testing.T) {
	p := testPayload()
	products := ExtractProducts(p)
	alkohols := ExtractAlkohols(p)
	all := ExtractAllItems(p)

	require.Len(t, all, len(products)+len(alkohols))
	for i, item := range all {
		if i < len(products) {
			assert.False(t, item.IsDrink, "item %s from products must not be tagged drink", item.ID)
		} else {
			assert.True(t, item.IsDrink, "item %s from alkohols must be tagged drink", item.ID)
		}
	}

	// products come first, so the default display order is stable
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "a1", all[2].ID)
}

func TestExtractItems_FlattensIDs(t *testing.T) {
	products := ExtractProducts(testPayload())

	assert.Equal(t, "cat1", products[0].CategoryID)
	assert.Equal(t, "sub1", products[0].SubcategoryID)

	// missing references yield empty ids, never a panic
	assert.Empty(t, products[1].CategoryID)
	assert.Empty(t, products[1].SubcategoryID)
}

func TestExtractCategories_DedupLastWriteWins(t *testing.T) {
	p := &models.RawCatalogPayload{
		Products: []models.CatalogItem{
			{ID: "p1", Category: &models.CategoryRef{ID: "cat1", Name: models.LocalizedText{"en": "Old name"}, Slug: "old"}},
			{ID: "p2", Category: &models.CategoryRef{ID: "cat1", Name: models.LocalizedText{"en": "New name"}, Slug: "new"}},
		},
	}

	cats := ExtractCategories(p)
	require.Len(t, cats, 1)
	assert.Equal(t, "cat1", cats[0].ID)
	assert.Equal(t, "New name", cats[0].Name.Resolve("en"))
	assert.Equal(t, "new", cats[0].Slug)
}

func TestExtractSubcategories_ScansBothLists(t *testing.T) {
	subs := ExtractSubcategories(testPayload())
	require.Len(t, subs, 2)

	byID := map[string]models.Subcategory{}
	for _, s := range subs {
		byID[s.ID] = s
	}
	assert.Equal(t, "cat1", byID["sub1"].ParentCategory)
	assert.Equal(t, "cat2", byID["sub2"].ParentCategory)
}

func TestExtractors_NilPayload(t *testing.T) {
	assert.Empty(t, ExtractProducts(nil))
	assert.Empty(t, ExtractAlkohols(nil))
	assert.Empty(t, ExtractAllItems(nil))
	assert.Empty(t, ExtractCategories(nil))
	assert.Empty(t, ExtractSubcategories(nil))
}
