package cart

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

var (
	// ErrAgeConfirmationRequired means the item is alcoholic and the add was
	// parked until the client confirms legal age.
	ErrAgeConfirmationRequired = errors.New("age confirmation required")

	// ErrNoPendingItem means ConfirmAge was called with nothing parked.
	ErrNoPendingItem = errors.New("no item pending age confirmation")
)

// Service holds every client's cart. The in-memory state is authoritative;
// the repository mirrors it durably, and repository failures are logged and
// swallowed so adding to the cart never breaks on storage trouble.
type Service struct {
	repo Repository

	mu         sync.Mutex
	carts      map[string][]models.CartLine
	loaded     map[string]bool
	selections map[string]map[string]int     // clientID -> productID -> dialed quantity
	pending    map[string]models.CatalogItem // clientID -> parked alcoholic item
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:       repo,
		carts:      make(map[string][]models.CartLine),
		loaded:     make(map[string]bool),
		selections: make(map[string]map[string]int),
		pending:    make(map[string]models.CatalogItem),
	}
}

// Lines returns the client's cart, loading and migrating the persisted
// snapshot on first access.
func (s *Service) Lines(clientID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.loadLocked(clientID))
}

// AddToCart adds the item for the client. Alcoholic items are not added
// immediately: they are parked and ErrAgeConfirmationRequired is returned;
// ConfirmAge commits the parked add.
func (s *Service) AddToCart(clientID string, item models.CatalogItem) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.IsAlcoholic {
		s.pending[clientID] = item
		return copyLines(s.loadLocked(clientID)), ErrAgeConfirmationRequired
	}
	return s.addLocked(clientID, item), nil
}

// ConfirmAge commits the client's parked alcoholic item, if any.
func (s *Service) ConfirmAge(clientID string) ([]models.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.pending[clientID]
	if !ok {
		return nil, ErrNoPendingItem
	}
	delete(s.pending, clientID)
	return s.addLocked(clientID, item), nil
}

func (s *Service) addLocked(clientID string, item models.CatalogItem) []models.CartLine {
	lines := s.loadLocked(clientID)

	quantity := 1
	if sel := s.selections[clientID]; sel != nil {
		if q := sel[item.ID]; q > 0 {
			quantity = q
		}
		delete(sel, item.ID)
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == item.ID {
			// Merge keeps the prices from the first add: the discount is a
			// property of the catalog price at that moment, never recomputed.
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, models.CartLine{
			ProductID:     item.ID,
			Slug:          item.Slug,
			IsDrink:       item.IsDrink,
			IsAlcoholic:   item.IsAlcoholic,
			Name:          item.Name,
			Title:         item.Title,
			Images:        item.Images,
			Quantity:      quantity,
			OriginalPrice: item.Price,
			Price:         ApplyDiscount(item.Price),
			AddedAt:       time.Now(),
		})
	}

	s.carts[clientID] = lines
	s.persistLocked(clientID)
	return copyLines(lines)
}

// IncreaseSelection bumps the dialed quantity for a product before it is
// committed to the cart. Returns the new value.
func (s *Service) IncreaseSelection(clientID, productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.selectionLocked(clientID)
	sel[productID] = s.selectionValueLocked(clientID, productID) + 1
	return sel[productID]
}

// DecreaseSelection lowers the dialed quantity, flooring at 1.
func (s *Service) DecreaseSelection(clientID, productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.selectionLocked(clientID)
	q := s.selectionValueLocked(clientID, productID) - 1
	if q < 1 {
		q = 1
	}
	sel[productID] = q
	return q
}

// Selection returns the dialed quantity for a product, defaulting to 1.
func (s *Service) Selection(clientID, productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectionValueLocked(clientID, productID)
}

func (s *Service) selectionLocked(clientID string) map[string]int {
	sel := s.selections[clientID]
	if sel == nil {
		sel = make(map[string]int)
		s.selections[clientID] = sel
	}
	return sel
}

func (s *Service) selectionValueLocked(clientID, productID string) int {
	if sel := s.selections[clientID]; sel != nil {
		if q := sel[productID]; q > 0 {
			return q
		}
	}
	return 1
}

// RemoveLine deletes the product's line. Removing an absent id is a no-op.
func (s *Service) RemoveLine(clientID, productID string) []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.loadLocked(clientID)
	kept := lines[:0:0]
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return copyLines(lines)
	}
	s.carts[clientID] = kept
	s.persistLocked(clientID)
	return copyLines(kept)
}

// ClearCart empties the client's lines and selections and removes the
// durable snapshot.
func (s *Service) ClearCart(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[clientID] = nil
	s.loaded[clientID] = true
	delete(s.selections, clientID)
	delete(s.pending, clientID)
	if err := s.repo.Delete(clientID); err != nil {
		log.Printf("⚠️ Cart storage unavailable on clear, continuing in-memory: %v", err)
	}
}

// CheckoutItems exposes the cart in the shape the checkout API consumes.
// Prices are the discounted line prices.
func (s *Service) CheckoutItems(clientID, locale string) []models.CheckoutItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.loadLocked(clientID)
	items := make([]models.CheckoutItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.CheckoutItem{
			ProductID: line.ProductID,
			Name:      line.DisplayName(locale),
			Price:     line.Price,
			Quantity:  line.Quantity,
			Images:    line.Images,
		})
	}
	return items
}

func (s *Service) loadLocked(clientID string) []models.CartLine {
	if s.loaded[clientID] {
		return s.carts[clientID]
	}
	s.loaded[clientID] = true
	lines, err := s.repo.Load(clientID)
	if err != nil {
		log.Printf("⚠️ Cart storage unavailable on load, starting empty: %v", err)
		s.carts[clientID] = nil
		return nil
	}
	migrated := MigrateCartLines(lines)
	s.carts[clientID] = migrated
	return migrated
}

func (s *Service) persistLocked(clientID string) {
	if err := s.repo.Save(clientID, s.carts[clientID]); err != nil {
		log.Printf("⚠️ Cart storage unavailable on save, keeping in-memory copy: %v", err)
	}
}

func copyLines(lines []models.CartLine) []models.CartLine {
	return append([]models.CartLine{}, lines...)
}
