package skinvault

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrNotFound reports a lookup miss: the hash name is unknown to the catalog
// or to the name-id mapping, or the order book has no sell listing. It is an
// expected outcome, callers absorb it as "no price available".
var ErrNotFound = errors.New("no listing found")

// MarketSource is the raw external market the resolver works against.
// The real implementation is steam.Client.
type MarketSource interface {
	// FetchCatalog returns every known catalog listing.
	FetchCatalog(ctx context.Context) ([]CatalogItem, error)
	// FetchNameIDs returns the full hash-name to name-id mapping.
	FetchNameIDs(ctx context.Context) (map[string]int64, error)
	// FetchOrderBook returns the current order-book snapshot for a name-id.
	FetchOrderBook(ctx context.Context, nameID int64) (OrderBook, error)
}

// CatalogItem is one raw record of the public item catalog.
type CatalogItem struct {
	ID          string
	HashName    string
	Name        string
	Type        string
	Rarity      string
	RarityColor string
	Image       string
}

// OrderBook is the current top of an item's order book, in minor currency
// units. A zero LowestSellCents means there is no sell listing.
type OrderBook struct {
	LowestSellCents int64
	HighestBuyCents int64
}

// cached pairs a value with the instant it was fetched, so staleness is
// decided against an injectable clock rather than hidden inside the cache.
type cached[T any] struct {
	value     T
	fetchedAt time.Time
}

func (c cached[T]) fresh(now time.Time, ttl time.Duration) bool {
	return !c.fetchedAt.IsZero() && now.Sub(c.fetchedAt) < ttl
}

// Resolver turns a human-entered hash name into a current net sell price,
// through a two-stage lookup: hash name to numeric name-id (long-lived
// mapping), then name-id to order book (live). The gross lowest sell order
// goes through ApplyFee.
//
// Both the catalog and the mapping are cached in the resolver itself, with
// explicit TTLs. The mapping rarely changes so its TTL is long; the catalog
// backs interactive search and refreshes faster.
type Resolver struct {
	src MarketSource
	now func() time.Time

	// CatalogTTL and MappingTTL bound the age of the two caches.
	CatalogTTL time.Duration
	MappingTTL time.Duration
	// MaxResults caps catalog search fan-out.
	MaxResults int

	mu      sync.Mutex
	catalog cached[[]CatalogItem]
	nameIDs cached[map[string]int64]
}

// Default cache lifetimes and search cap.
const (
	DefaultCatalogTTL = 5 * time.Minute
	DefaultMappingTTL = 24 * time.Hour
	DefaultMaxResults = 10
)

// NewResolver returns a resolver over the given market source with default
// TTLs and search cap.
func NewResolver(src MarketSource) *Resolver {
	return &Resolver{
		src:        src,
		now:        time.Now,
		CatalogTTL: DefaultCatalogTTL,
		MappingTTL: DefaultMappingTTL,
		MaxResults: DefaultMaxResults,
	}
}

// WithClock replaces the resolver's clock, for deterministic cache tests.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

// allItems returns the cached catalog, reloading it when stale.
func (r *Resolver) allItems(ctx context.Context) ([]CatalogItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.catalog.fresh(r.now(), r.CatalogTTL) {
		return r.catalog.value, nil
	}
	items, err := r.src.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	r.catalog = cached[[]CatalogItem]{value: items, fetchedAt: r.now()}
	return items, nil
}

// nameID resolves a hash name to its numeric name-id through the cached
// mapping, reloading the full mapping when stale. An unknown hash name on a
// fresh mapping is a lookup miss.
func (r *Resolver) nameID(ctx context.Context, hashName string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.nameIDs.fresh(r.now(), r.MappingTTL) {
		m, err := r.src.FetchNameIDs(ctx)
		if err != nil {
			return 0, fmt.Errorf("fetch name-id mapping: %w", err)
		}
		r.nameIDs = cached[map[string]int64]{value: m, fetchedAt: r.now()}
	}
	id, ok := r.nameIDs.value[hashName]
	if !ok {
		return 0, fmt.Errorf("%q: %w", hashName, ErrNotFound)
	}
	return id, nil
}

// Price resolves the current net sell price for a hash name.
//
// It returns ErrNotFound (wrapped) on a lookup miss, any other error on a
// transport or parse failure. The caller decides whether to keep a
// previously known price.
func (r *Resolver) Price(ctx context.Context, hashName string) (Money, error) {
	id, err := r.nameID(ctx, hashName)
	if err != nil {
		return Money{}, err
	}
	return r.priceByID(ctx, hashName, id)
}

func (r *Resolver) priceByID(ctx context.Context, hashName string, id int64) (Money, error) {
	book, err := r.src.FetchOrderBook(ctx, id)
	if err != nil {
		return Money{}, fmt.Errorf("fetch order book for %q: %w", hashName, err)
	}
	if book.LowestSellCents == 0 {
		return Money{}, fmt.Errorf("%q has no sell order: %w", hashName, ErrNotFound)
	}
	return ApplyFee(Cents(book.LowestSellCents)), nil
}

// Search filters the catalog by case-insensitive substring match on the hash
// name, caps the matches at MaxResults, and resolves a current price for
// each. Matches without a name-id are skipped. This operation is inherently
// slower than Price: it performs the full two-stage lookup per match, which
// is why the cap exists.
func (r *Resolver) Search(ctx context.Context, query string) ([]Entry, error) {
	items, err := r.allItems(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var entries []Entry
	matches := 0
	for _, it := range items {
		if it.HashName == "" || !strings.Contains(strings.ToLower(it.HashName), q) {
			continue
		}
		// The cap bounds the fan-out of examined matches, so a broad query
		// never triggers an unbounded number of order-book lookups.
		matches++
		if matches > r.MaxResults {
			break
		}
		e, err := r.entry(ctx, it)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Lookup finds the catalog entry exactly matching a hash name and resolves
// its current price. It returns ErrNotFound when the hash name is unknown.
func (r *Resolver) Lookup(ctx context.Context, hashName string) (Entry, error) {
	items, err := r.allItems(ctx)
	if err != nil {
		return Entry{}, err
	}
	for _, it := range items {
		if it.HashName == hashName {
			return r.entry(ctx, it)
		}
	}
	return Entry{}, fmt.Errorf("%q: %w", hashName, ErrNotFound)
}

// Validate reports whether a hash name exists in the catalog with a
// resolvable listing.
func (r *Resolver) Validate(ctx context.Context, hashName string) bool {
	_, err := r.Lookup(ctx, hashName)
	return err == nil
}

func (r *Resolver) entry(ctx context.Context, it CatalogItem) (Entry, error) {
	id, err := r.nameID(ctx, it.HashName)
	if err != nil {
		return Entry{}, err
	}
	price, err := r.priceByID(ctx, it.HashName, id)
	if err != nil {
		return Entry{}, err
	}
	name := it.Name
	if name == "" {
		name = it.HashName
	}
	return Entry{
		NameID:      id,
		HashName:    it.HashName,
		Name:        name,
		Type:        it.Type,
		Rarity:      it.Rarity,
		RarityColor: it.RarityColor,
		Image:       it.Image,
		SalePrice:   price,
	}, nil
}
