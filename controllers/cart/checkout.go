package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kroogliy/maitsevcatering-sub000/cart"
)

type CheckoutInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Comment string `json:"comment"`
	Locale  string `json:"locale"`
}

var checkoutHTTPClient = &http.Client{Timeout: 20 * time.Second}

// POST /user/checkout
// Forwards the cart to the external checkout API. The cart is cleared only
// after the checkout API confirms success; any failure leaves it intact.
func Checkout(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := clientID(c)
		if !ok {
			return
		}

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		locale := input.Locale
		if locale == "" {
			locale = "en"
		}

		items := svc.CheckoutItems(userID, locale)
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		checkoutURL := os.Getenv("CHECKOUT_API_URL")
		if checkoutURL == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Checkout is not configured"})
			return
		}

		body, err := json.Marshal(gin.H{
			"customer": gin.H{
				"name":    input.Name,
				"phone":   input.Phone,
				"email":   input.Email,
				"address": input.Address,
				"comment": input.Comment,
			},
			"items": items,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build checkout request"})
			return
		}

		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, checkoutURL, bytes.NewReader(body))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build checkout request"})
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := checkoutHTTPClient.Do(req)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Checkout submission failed"})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Checkout was rejected"})
			return
		}

		svc.ClearCart(userID)
		c.JSON(http.StatusOK, gin.H{"message": "Order submitted"})
	}
}
