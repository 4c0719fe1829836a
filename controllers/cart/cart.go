package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/cart"
	"github.com/kroogliy/maitsevcatering-sub000/catalog"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type SelectionInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Action    string `json:"action" binding:"required,oneof=increase decrease"`
}

func clientID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// GET /user/cart
func GetCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := clientID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, svc.Lines(userID))
	}
}

// POST /user/cart
// Adds the product to the cart at the dialed quantity. Alcoholic items are
// parked until age confirmation and answered with 202.
func AddCartItem(svc *cart.Service, store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := clientID(c)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := store.ItemByID(input.ProductID)
		if item == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		lines, err := svc.AddToCart(userID, *item)
		if err != nil {
			if errors.Is(err, cart.ErrAgeConfirmationRequired) {
				c.JSON(http.StatusAccepted, gin.H{
					"requires_age_confirmation": true,
					"product_id":                item.ID,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, lines)
	}
}

// POST /user/cart/confirm-age
// Commits the parked alcoholic item.
func ConfirmAge(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := clientID(c)
		if !ok {
			return
		}

		lines, err := svc.ConfirmAge(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No item pending age confirmation"})
			return
		}
		c.JSON(http.StatusCreated, lines)
	}
}

// POST /user/cart/selection
// Dials the quantity for a product before it is committed to the cart.
func UpdateSelection(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := clientID(c)
		if !ok {
			return
		}

		var input SelectionInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var quantity int
		if input.Action == "increase" {
			quantity = svc.IncreaseSelection(userID, input.ProductID)
		} else {
			quantity = svc.DecreaseSelection(userID, input.ProductID)
		}

		c.JSON(http.StatusOK, gin.H{
			"product_id": input.ProductID,
			"quantity":   quantity,
		})
	}
}

// DELETE /user/cart/:product_id
// Removing an id that is not in the cart is a no-op, not an error.
func DeleteCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := clientID(c)
		if !ok {
			return
		}
		productID := c.Param("product_id")

		lines := svc.RemoveLine(userID, productID)
		c.JSON(http.StatusOK, gin.H{
			"message": "Cart item deleted",
			"items":   lines,
		})
	}
}

// DELETE /user/cart
func ClearCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := clientID(c)
		if !ok {
			return
		}
		svc.ClearCart(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart/checkout-items
func GetCheckoutItems(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := clientID(c)
		if !ok {
			return
		}
		locale := c.DefaultQuery("locale", "en")
		c.JSON(http.StatusOK, svc.CheckoutItems(userID, locale))
	}
}
