package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/catalog"
)

// GetItemBySlug returns a single catalog item.
// URL param: /user/catalog/items/:slug
// On a slug shared between a food item and a beverage the food item wins.
func GetItemBySlug(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if slug == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item slug is required"})
			return
		}

		item := store.ItemBySlug(slug)
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
