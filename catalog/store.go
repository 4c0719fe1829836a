package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/kroogliy/maitsevcatering-sub000/models"
)

// DefaultMaxAge is how old a fetched catalog may get before RefreshIfStale
// re-fetches it.
const DefaultMaxAge = 10 * time.Minute

const defaultPageLimit = 12

// Fetcher retrieves the raw catalog payload. Satisfied by *Client.
type Fetcher interface {
	FetchCatalog(ctx context.Context) (*models.RawCatalogPayload, error)
}

// QueryOptions tune ItemsBySubcategory. Zero values mean: no search, no
// explicit sort (default display order), page 1, limit 12, locale "en".
type QueryOptions struct {
	SearchTerm    string
	SortField     string
	SortDirection string
	Page          int
	Limit         int
	Locale        string
}

func (o QueryOptions) withDefaults() QueryOptions {
	if o.Page == 0 {
		o.Page = 1
	}
	if o.Limit == 0 {
		o.Limit = defaultPageLimit
	}
	if o.Locale == "" {
		o.Locale = "en"
	}
	if o.SortField != "" && o.SortDirection == "" {
		o.SortDirection = SortAsc
	}
	return o
}

// RefreshListener is notified after every successful fetch.
type RefreshListener func(fetchedAt time.Time)

// Store is the process-wide catalog cache: it owns the raw payload, the
// derived collections and the fetch lifecycle, and exposes the query engine
// bound to its current snapshot. All methods are safe for concurrent use.
//
// Overlapping fetches are collapsed single-flight: the first caller performs
// the request, later callers block on its result.
type Store struct {
	fetcher   Fetcher
	snapshots SnapshotStore // optional; nil disables durable persistence

	mu            sync.Mutex
	payload       *models.RawCatalogPayload
	loading       bool
	initialized   bool
	lastFetchTime time.Time
	lastErr       error

	categories    []models.Category
	subcategories []models.Subcategory
	products      []models.CatalogItem
	alkohols      []models.CatalogItem
	allItems      []models.CatalogItem

	// Single-flight slot: non-nil while a fetch is outstanding, closed when
	// it settles. Joiners read flightPayload/flightErr after the close.
	flight        chan struct{}
	flightPayload *models.RawCatalogPayload
	flightErr     error

	listeners []RefreshListener
}

func NewStore(fetcher Fetcher, snapshots SnapshotStore) *Store {
	return &Store{fetcher: fetcher, snapshots: snapshots}
}

// OnRefresh registers a listener called after each successful fetch. Not
// safe to call once fetching has started; wire listeners at composition time.
func (s *Store) OnRefresh(l RefreshListener) {
	s.listeners = append(s.listeners, l)
}

// RestoreSnapshot loads the durable snapshot, if any, and recomputes the
// derived collections from it. Meant to run once at startup before any
// network call, so possibly-stale data renders instantly. Returns whether a
// snapshot was restored. Storage failures are logged and ignored.
func (s *Store) RestoreSnapshot(ctx context.Context) bool {
	if s.snapshots == nil {
		return false
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		log.Printf("⚠️ Catalog snapshot load failed: %v", err)
		return false
	}
	if snap == nil || snap.Payload == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = snap.Payload
	s.lastFetchTime = snap.FetchedAt
	s.initialized = true
	s.recomputeLocked()
	return true
}

// FetchAll returns the catalog payload, fetching it if needed. When the
// store is initialized and force is false the cached payload is returned
// without touching the network. A failed fetch keeps previously cached data
// visible and is recorded in Err.
func (s *Store) FetchAll(ctx context.Context, force bool) (*models.RawCatalogPayload, error) {
	s.mu.Lock()
	if s.initialized && s.payload != nil && !force {
		payload := s.payload
		s.mu.Unlock()
		return payload, nil
	}

	if s.flight != nil {
		done := s.flight
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		s.mu.Lock()
		payload, err := s.flightPayload, s.flightErr
		s.mu.Unlock()
		return payload, err
	}

	done := make(chan struct{})
	s.flight = done
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	payload, err := s.fetcher.FetchCatalog(ctx)

	s.mu.Lock()
	s.loading = false
	s.flight = nil
	s.flightPayload, s.flightErr = payload, err
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		close(done)
		return nil, err
	}
	s.payload = payload
	s.lastFetchTime = time.Now()
	s.initialized = true
	s.recomputeLocked()
	fetchedAt := s.lastFetchTime
	listeners := append([]RefreshListener(nil), s.listeners...)
	s.mu.Unlock()
	close(done)

	s.persistSnapshot(payload, fetchedAt)
	for _, l := range listeners {
		l(fetchedAt)
	}
	return payload, nil
}

// Initialize performs the initial fetch, or just recomputes derived data
// when a payload is already present (e.g. restored from a snapshot).
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized && s.payload != nil {
		s.recomputeLocked()
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()
	_, err := s.FetchAll(ctx, false)
	return err
}

// Refresh always forces a re-fetch.
func (s *Store) Refresh(ctx context.Context) error {
	_, err := s.FetchAll(ctx, true)
	return err
}

// IsStale reports whether the cached catalog is older than maxAge. A store
// that never fetched is always stale.
func (s *Store) IsStale(maxAge time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastFetchTime.IsZero() {
		return true
	}
	return time.Since(s.lastFetchTime) > maxAge
}

// RefreshIfStale refreshes only when the cache is stale, otherwise returns
// the current payload without any network call.
func (s *Store) RefreshIfStale(ctx context.Context, maxAge time.Duration) (*models.RawCatalogPayload, error) {
	if s.IsStale(maxAge) {
		return s.FetchAll(ctx, true)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payload, nil
}

// IsReady reports whether read accessors will serve data.
func (s *Store) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readyLocked()
}

func (s *Store) readyLocked() bool {
	return s.initialized && !s.loading && s.payload != nil
}

// Err returns the error recorded by the most recent failed fetch, if any.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// LastFetchTime returns when the current payload was fetched (zero if never).
func (s *Store) LastFetchTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFetchTime
}

// Read accessors return copies and are empty, never panicking, when the
// store is not ready.

func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.readyLocked() {
		return []models.Category{}
	}
	return append([]models.Category{}, s.categories...)
}

func (s *Store) Subcategories() []models.Subcategory {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.readyLocked() {
		return []models.Subcategory{}
	}
	return append([]models.Subcategory{}, s.subcategories...)
}

func (s *Store) Products() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.readyLocked() {
		return []models.CatalogItem{}
	}
	return append([]models.CatalogItem{}, s.products...)
}

func (s *Store) Alkohols() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.readyLocked() {
		return []models.CatalogItem{}
	}
	return append([]models.CatalogItem{}, s.alkohols...)
}

func (s *Store) AllItems() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.readyLocked() {
		return []models.CatalogItem{}
	}
	return append([]models.CatalogItem{}, s.allItems...)
}

// ItemBySlug scans products first, then alkohols, so on a slug collision
// the food item wins. Returns nil when absent or the store is not ready.
func (s *Store) ItemBySlug(slug string) *models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.readyLocked() || slug == "" {
		return nil
	}
	for _, list := range [][]models.CatalogItem{s.products, s.alkohols} {
		for _, item := range list {
			if item.Slug == slug {
				found := item
				return &found
			}
		}
	}
	return nil
}

// ItemByID looks an item up by its catalog id, products before alkohols.
func (s *Store) ItemByID(id string) *models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.readyLocked() || id == "" {
		return nil
	}
	for _, list := range [][]models.CatalogItem{s.products, s.alkohols} {
		for _, item := range list {
			if item.ID == id {
				found := item
				return &found
			}
		}
	}
	return nil
}

// ItemsBySubcategory composes filter → search → sort → paginate, in that
// fixed order, over the current item snapshot.
func (s *Store) ItemsBySubcategory(subcategoryID string, opts QueryOptions) (Page, error) {
	opts = opts.withDefaults()

	s.mu.Lock()
	var items []models.CatalogItem
	if s.readyLocked() {
		items = append([]models.CatalogItem{}, s.allItems...)
	}
	s.mu.Unlock()

	result := FilterBySubcategory(items, subcategoryID)
	result = SearchItems(result, opts.SearchTerm, opts.Locale)
	if opts.SortField != "" {
		sorted, err := SortItems(result, opts.SortField, opts.SortDirection, opts.Locale)
		if err != nil {
			return Page{}, err
		}
		result = sorted
	}
	return PaginateItems(result, opts.Page, opts.Limit)
}

// SearchInSubcategory is ItemsBySubcategory with only a search term set.
func (s *Store) SearchInSubcategory(subcategoryID, term, locale string) (Page, error) {
	return s.ItemsBySubcategory(subcategoryID, QueryOptions{SearchTerm: term, Locale: locale})
}

func (s *Store) recomputeLocked() {
	s.products = ExtractProducts(s.payload)
	s.alkohols = ExtractAlkohols(s.payload)
	s.allItems = ExtractAllItems(s.payload)
	s.categories = ExtractCategories(s.payload)
	s.subcategories = ExtractSubcategories(s.payload)
}

func (s *Store) persistSnapshot(payload *models.RawCatalogPayload, fetchedAt time.Time) {
	if s.snapshots == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := s.snapshots.Save(ctx, &Snapshot{Payload: payload, FetchedAt: fetchedAt})
	if err != nil {
		log.Printf("⚠️ Catalog snapshot save failed, keeping in-memory only: %v", err)
	}
}
