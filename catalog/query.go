package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

// Sort parameters accepted by SortItems. Anything else is rejected rather
// than silently defaulting.
const (
	SortByName  = "name"
	SortByPrice = "price"

	SortAsc  = "asc"
	SortDesc = "desc"
)

var (
	ErrInvalidSortField     = errors.New("invalid sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
	ErrInvalidLimit         = errors.New("pagination limit must be positive")
)

// FilterBySubcategory keeps items whose derived SubcategoryID equals
// subcategoryID. An empty id returns an empty slice, not the full set.
func FilterBySubcategory(items []models.CatalogItem, subcategoryID string) []models.CatalogItem {
	out := []models.CatalogItem{}
	if subcategoryID == "" {
		return out
	}
	for _, item := range items {
		if item.SubcategoryID == subcategoryID {
			out = append(out, item)
		}
	}
	return out
}

// queryName is the string search and name-sort share: the drink Name, or
// the food title in the requested locale with en as the only fallback.
// The wider display chain stays out of matching.
func queryName(item models.CatalogItem, locale string) string {
	if item.IsDrink {
		return item.Name
	}
	return item.Title.ResolveQuery(locale)
}

// SearchItems does a case-insensitive substring match against the drink
// Name or the food title resolved for the requested locale (en fallback
// only); descriptions and other locales are never searched. An empty term
// returns items unchanged.
func SearchItems(items []models.CatalogItem, term, locale string) []models.CatalogItem {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := []models.CatalogItem{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(queryName(item, locale)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// SortItems returns a sorted copy of items. Name ordering is locale-aware
// collation over the same resolved string the search matches against;
// price ordering is numeric. The sort is stable, so ties keep their
// relative order.
func SortItems(items []models.CatalogItem, field, direction, locale string) ([]models.CatalogItem, error) {
	switch field {
	case SortByName, SortByPrice:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, field)
	}
	switch direction {
	case SortAsc, SortDesc:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortDirection, direction)
	}

	var compare func(a, b models.CatalogItem) int
	if field == SortByPrice {
		compare = func(a, b models.CatalogItem) int {
			switch {
			case a.Price < b.Price:
				return -1
			case a.Price > b.Price:
				return 1
			}
			return 0
		}
	} else {
		col := newCollator(locale)
		compare = func(a, b models.CatalogItem) int {
			return col.CompareString(queryName(a, locale), queryName(b, locale))
		}
	}

	out := make([]models.CatalogItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if direction == SortDesc {
			return c > 0
		}
		return c < 0
	})
	return out, nil
}

func newCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return collate.New(tag, collate.IgnoreCase)
}

// Pagination describes the page window PaginateItems produced.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

// Page is one page of items plus its pagination metadata.
type Page struct {
	Items      []models.CatalogItem `json:"items"`
	Pagination Pagination           `json:"pagination"`
}

// PaginateItems slices items into the requested page. The page number is
// clamped to [1, totalPages] (1 when there are no pages at all). A
// non-positive limit is rejected.
func PaginateItems(items []models.CatalogItem, page, limit int) (Page, error) {
	if limit <= 0 {
		return Page{}, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	slice := make([]models.CatalogItem, end-start)
	copy(slice, items[start:end])
	return Page{
		Items: slice,
		Pagination: Pagination{
			CurrentPage: page,
			PerPage:     limit,
			TotalItems:  total,
			TotalPages:  totalPages,
		},
	}, nil
}
