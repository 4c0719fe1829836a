package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

const testClient = "guest_test"

func khachapuri() models.CatalogItem {
	return models.CatalogItem{
		ID: "p1", Slug: "khachapuri", Price: 10,
		Title:  models.LocalizedText{"en": "Khachapuri", "ru": "Хачапури"},
		Images: models.ImageList{"khachapuri.jpg"},
	}
}

func saperavi() models.CatalogItem {
	return models.CatalogItem{
		ID: "a1", Slug: "saperavi", Price: 20, Name: "Saperavi",
		IsDrink: true, IsAlcoholic: true,
	}
}

func TestAddToCart_AppliesDiscount(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	lines, err := svc.AddToCart(testClient, khachapuri())
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, 10.0, lines[0].OriginalPrice)
	assert.Equal(t, 9.7, lines[0].Price)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.False(t, lines[0].AddedAt.IsZero())
}

func TestAddToCart_MergeSumsQuantityKeepsFirstPrices(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	// dial quantity 2, then add
	svc.IncreaseSelection(testClient, "p1")
	_, err := svc.AddToCart(testClient, khachapuri())
	require.NoError(t, err)

	// dial quantity 3 and add the same product again, now at a higher
	// catalog price; the merge must keep the first add's prices
	svc.IncreaseSelection(testClient, "p1")
	svc.IncreaseSelection(testClient, "p1")
	repriced := khachapuri()
	repriced.Price = 12
	lines, err := svc.AddToCart(testClient, repriced)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 10.0, lines[0].OriginalPrice)
	assert.Equal(t, 9.7, lines[0].Price)
}

func TestAddToCart_AlcoholRequiresConfirmation(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	lines, err := svc.AddToCart(testClient, saperavi())
	require.ErrorIs(t, err, ErrAgeConfirmationRequired)
	assert.Empty(t, lines, "the parked item must not be in the cart yet")
	assert.Empty(t, svc.Lines(testClient))

	lines, err = svc.ConfirmAge(testClient)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "a1", lines[0].ProductID)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 20.0, lines[0].OriginalPrice)
	assert.Equal(t, 19.4, lines[0].Price)

	// nothing parked anymore
	_, err = svc.ConfirmAge(testClient)
	assert.ErrorIs(t, err, ErrNoPendingItem)
}

func TestSelections_FloorAtOne(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	assert.Equal(t, 1, svc.Selection(testClient, "p1"))
	assert.Equal(t, 2, svc.IncreaseSelection(testClient, "p1"))
	assert.Equal(t, 3, svc.IncreaseSelection(testClient, "p1"))
	assert.Equal(t, 2, svc.DecreaseSelection(testClient, "p1"))
	assert.Equal(t, 1, svc.DecreaseSelection(testClient, "p1"))
	assert.Equal(t, 1, svc.DecreaseSelection(testClient, "p1"), "selection never drops below one")
}

func TestRemoveLine_Idempotent(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.AddToCart(testClient, khachapuri())
	require.NoError(t, err)

	lines := svc.RemoveLine(testClient, "p1")
	assert.Empty(t, lines)

	// removing an absent id is a no-op, not an error
	lines = svc.RemoveLine(testClient, "p1")
	assert.Empty(t, lines)
	lines = svc.RemoveLine(testClient, "never-existed")
	assert.Empty(t, lines)
}

func TestClearCart_RemovesDurableSnapshot(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	_, err := svc.AddToCart(testClient, khachapuri())
	require.NoError(t, err)
	svc.IncreaseSelection(testClient, "p2")

	svc.ClearCart(testClient)

	assert.Empty(t, svc.Lines(testClient))
	assert.Equal(t, 1, svc.Selection(testClient, "p2"), "selections reset with the cart")

	persisted, err := repo.Load(testClient)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestLines_MigratesPersistedCart(t *testing.T) {
	repo := NewMemoryRepository()
	// a snapshot persisted before the discount schema: Price holds the
	// pre-discount price and OriginalPrice is absent
	require.NoError(t, repo.Save(testClient, []models.CartLine{
		{ProductID: "p1", Price: 10, Quantity: 2},
	}))

	svc := NewService(repo)
	lines := svc.Lines(testClient)
	require.Len(t, lines, 1)
	assert.Equal(t, 10.0, lines[0].OriginalPrice)
	assert.Equal(t, 9.7, lines[0].Price)
}

func TestCartPersistsAcrossServiceRestarts(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	_, err := svc.AddToCart(testClient, khachapuri())
	require.NoError(t, err)

	restarted := NewService(repo)
	lines := restarted.Lines(testClient)
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, 9.7, lines[0].Price)
}

func TestCheckoutItems(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	svc.IncreaseSelection(testClient, "p1")
	_, err := svc.AddToCart(testClient, khachapuri())
	require.NoError(t, err)

	items := svc.CheckoutItems(testClient, "ru")
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "Хачапури", items[0].Name)
	assert.Equal(t, 9.7, items[0].Price, "checkout always carries the discounted price")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, models.ImageList{"khachapuri.jpg"}, items[0].Images)
}

type brokenRepository struct{}

func (brokenRepository) Load(string) ([]models.CartLine, error) {
	return nil, errors.New("storage offline")
}
func (brokenRepository) Save(string, []models.CartLine) error {
	return errors.New("storage offline")
}
func (brokenRepository) Delete(string) error {
	return errors.New("storage offline")
}

func TestStorageFailuresNeverBreakTheCart(t *testing.T) {
	svc := NewService(brokenRepository{})

	lines, err := svc.AddToCart(testClient, khachapuri())
	require.NoError(t, err, "a broken store must not block adding to cart")
	require.Len(t, lines, 1)

	assert.Len(t, svc.Lines(testClient), 1)
	svc.ClearCart(testClient)
	assert.Empty(t, svc.Lines(testClient))
}
