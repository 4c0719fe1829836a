package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/cart"
	"github.com/kroogliy/maitsevcatering-sub000/catalog"
	catalogControllers "github.com/kroogliy/maitsevcatering-sub000/controllers/catalog"
)

// SetupRoutes is the single entry-point that wires up Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, store *catalog.Store, cartSvc *cart.Service) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r)

	// 2️⃣ User routes (guest-JWT-protected)
	SetupUserRoutes(r, store, cartSvc)

	// 3️⃣ Admin routes (API-Key-protected)
	SetupAdminRoutes(r, store)

	// catalog refresh push channel
	r.GET("/ws/catalog", catalogControllers.CatalogWebSocketHandler)
}
