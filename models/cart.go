package models

import "time"

// CartLine is one cart entry, snapshotting the catalog fields the checkout
// needs at the time of adding. Price is the discounted price; OriginalPrice
// is the catalog price when the line was first added. Lines persisted before
// the discount schema have no OriginalPrice and are migrated on load.
type CartLine struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	ClientID string `gorm:"index" json:"-"`

	ProductID   string        `gorm:"index" json:"_id"`
	Slug        string        `json:"slug"`
	IsDrink     bool          `json:"isDrink"`
	IsAlcoholic bool          `json:"isAlcoholic"`
	Name        string        `json:"name,omitempty"`
	Title       LocalizedText `gorm:"serializer:json" json:"title,omitempty"`
	Images      ImageList     `gorm:"serializer:json" json:"images"`

	Quantity      int       `json:"quantity"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Price         float64   `json:"price"`
	AddedAt       time.Time `json:"addedAt"`
}

// DisplayName resolves the line's user-facing name the same way CatalogItem does.
func (l CartLine) DisplayName(locale string) string {
	if l.IsDrink {
		return l.Name
	}
	return l.Title.Resolve(locale)
}

// CheckoutItem is the shape handed to the checkout API. Price is always the
// discounted line price, never OriginalPrice.
type CheckoutItem struct {
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Images    ImageList `json:"images"`
}
