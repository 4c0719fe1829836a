package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/catalog"
)

// POST /admin/catalog/refresh
// Forces a re-fetch regardless of staleness. Previously cached data stays
// visible when the upstream fails.
func RefreshCatalog(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Refresh(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    "Catalog refreshed",
			"fetched_at": store.LastFetchTime(),
		})
	}
}
