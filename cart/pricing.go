package cart

import (
	"math"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

// DiscountRate is the fixed cart-wide discount applied to the catalog price
// when an item enters the cart.
const DiscountRate = 0.03

// Round2 rounds to two decimal places (cents).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ApplyDiscount returns the discounted price for any non-negative catalog
// price. Zero or negative prices are returned unchanged: no discount
// applies, but it is not an error.
func ApplyDiscount(price float64) float64 {
	if price <= 0 {
		return price
	}
	return Round2(price * (1 - DiscountRate))
}

// MigrateCartLines upgrades lines persisted before the discount schema:
// a line without OriginalPrice stored the pre-discount price in Price, so
// OriginalPrice takes that value and Price gets the discount applied.
// Already-migrated lines pass through untouched, making this idempotent.
// Runs on every cart load before the lines are exposed.
func MigrateCartLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	for i, line := range lines {
		if line.OriginalPrice == 0 && line.Price > 0 {
			line.OriginalPrice = line.Price
			line.Price = ApplyDiscount(line.OriginalPrice)
		}
		out[i] = line
	}
	return out
}
