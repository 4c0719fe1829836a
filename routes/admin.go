package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/catalog"
	catalogControllers "github.com/kroogliy/maitsevcatering-sub000/controllers/catalog"
	"github.com/kroogliy/maitsevcatering-sub000/middleware"
)

// SetupAdminRoutes registers the "/admin/*" endpoints behind the API key.
func SetupAdminRoutes(r *gin.Engine, store *catalog.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.POST("/catalog/refresh", catalogControllers.RefreshCatalog(store))    // POST /admin/catalog/refresh
		adminGroup.GET("/catalog/export", catalogControllers.ExportItemsToExcel(store)) // GET /admin/catalog/export
	}
}
