package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/cart"
	"github.com/kroogliy/maitsevcatering-sub000/catalog"
	cartControllers "github.com/kroogliy/maitsevcatering-sub000/controllers/cart"
	catalogControllers "github.com/kroogliy/maitsevcatering-sub000/controllers/catalog"
	"github.com/kroogliy/maitsevcatering-sub000/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires the guest JWT middleware.
func SetupUserRoutes(r *gin.Engine, store *catalog.Store, cartSvc *cart.Service) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Browse Catalog ────────────────
		catalogGroup := userGroup.Group("/catalog")
		{
			catalogGroup.GET("/items", catalogControllers.GetCatalogItems(store))        // GET /user/catalog/items
			catalogGroup.GET("/items/:slug", catalogControllers.GetItemBySlug(store))    // GET /user/catalog/items/:slug
			catalogGroup.GET("/categories", catalogControllers.GetCategories(store))     // GET /user/catalog/categories
			catalogGroup.GET("/subcategories", catalogControllers.GetSubcategories(store)) // GET /user/catalog/subcategories
		}

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(cartSvc))                        // GET /user/cart
			cartGroup.POST("/", cartControllers.AddCartItem(cartSvc, store))            // POST /user/cart
			cartGroup.POST("/confirm-age", cartControllers.ConfirmAge(cartSvc))         // POST /user/cart/confirm-age
			cartGroup.POST("/selection", cartControllers.UpdateSelection(cartSvc))      // POST /user/cart/selection
			cartGroup.GET("/checkout-items", cartControllers.GetCheckoutItems(cartSvc)) // GET /user/cart/checkout-items
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(cartSvc))   // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(cartSvc))                   // DELETE /user/cart
		}

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", cartControllers.Checkout(cartSvc)) // POST /user/checkout
	}
}
