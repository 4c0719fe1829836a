package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/catalog"
)

// GET /user/catalog/items
// Query params: subcategory_id, search, sort_by (name|price), order
// (asc|desc), page, limit, locale.
func GetCatalogItems(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategoryID := c.Query("subcategory_id")
		search := c.Query("search")
		sortBy := c.Query("sort_by")
		sortOrder := strings.ToLower(c.DefaultQuery("order", catalog.SortAsc))
		locale := c.DefaultQuery("locale", "en")

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "12"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}

		result, err := store.ItemsBySubcategory(subcategoryID, catalog.QueryOptions{
			SearchTerm:    search,
			SortField:     sortBy,
			SortDirection: sortOrder,
			Page:          page,
			Limit:         limit,
			Locale:        locale,
		})
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrInvalidSortField),
				errors.Is(err, catalog.ErrInvalidSortDirection),
				errors.Is(err, catalog.ErrInvalidLimit):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog items"})
			}
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
