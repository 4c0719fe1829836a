package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/catalog"
	"github.com/kroogliy/maitsevcatering-sub000/models"
)

// GET /user/catalog/categories
func GetCategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Categories())
	}
}

// GET /user/catalog/subcategories
// Optional query param parent_category narrows to one category's children.
func GetSubcategories(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategories := store.Subcategories()

		if parent := c.Query("parent_category"); parent != "" {
			filtered := []models.Subcategory{}
			for _, sub := range subcategories {
				if sub.ParentCategory == parent {
					filtered = append(filtered, sub)
				}
			}
			subcategories = filtered
		}

		c.JSON(http.StatusOK, subcategories)
	}
}
