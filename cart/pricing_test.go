package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, 19.4, ApplyDiscount(20))
	assert.Equal(t, 9.7, ApplyDiscount(10))
	assert.Equal(t, 0.97, ApplyDiscount(1))

	// non-positive prices pass through: no discount applicable, not an error
	assert.Equal(t, 0.0, ApplyDiscount(0))
	assert.Equal(t, -5.0, ApplyDiscount(-5))

	for _, price := range []float64{0.01, 0.99, 5.55, 12.3, 100, 9999.99} {
		assert.LessOrEqual(t, ApplyDiscount(price), price, "discount must never raise the price")
		assert.GreaterOrEqual(t, ApplyDiscount(price), 0.0)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 19.4, Round2(19.4))
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235001))
	assert.Equal(t, 0.0, Round2(0))
}

func TestMigrateCartLines(t *testing.T) {
	legacy := models.CartLine{ProductID: "p1", Price: 10, Quantity: 2}
	migrated := MigrateCartLines([]models.CartLine{legacy})
	require.Len(t, migrated, 1)

	// the stored price predates the discount schema, so it becomes the
	// original and the discount is applied on top
	assert.Equal(t, 10.0, migrated[0].OriginalPrice)
	assert.Equal(t, 9.7, migrated[0].Price)
	assert.Equal(t, 2, migrated[0].Quantity)

	// idempotent: migrating again changes nothing
	again := MigrateCartLines(migrated)
	assert.Equal(t, migrated, again)

	// a line that already carries OriginalPrice is untouched
	current := models.CartLine{ProductID: "p2", OriginalPrice: 20, Price: 19.4}
	assert.Equal(t, []models.CartLine{current}, MigrateCartLines([]models.CartLine{current}))

	// zero-price lines are left alone
	free := models.CartLine{ProductID: "p3", Price: 0}
	assert.Equal(t, []models.CartLine{free}, MigrateCartLines([]models.CartLine{free}))
}
