package skinvault

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeMarket implements MarketSource in memory and counts fetches.
type fakeMarket struct {
	catalog []CatalogItem
	nameIDs map[string]int64
	books   map[int64]OrderBook
	err     error

	catalogFetches int
	mappingFetches int
	bookFetches    int
}

func (f *fakeMarket) FetchCatalog(ctx context.Context) ([]CatalogItem, error) {
	f.catalogFetches++
	return f.catalog, f.err
}

func (f *fakeMarket) FetchNameIDs(ctx context.Context) (map[string]int64, error) {
	f.mappingFetches++
	return f.nameIDs, f.err
}

func (f *fakeMarket) FetchOrderBook(ctx context.Context, nameID int64) (OrderBook, error) {
	f.bookFetches++
	if f.err != nil {
		return OrderBook{}, f.err
	}
	return f.books[nameID], nil
}

func newFakeMarket() *fakeMarket {
	return &fakeMarket{
		catalog: []CatalogItem{
			{ID: "1", HashName: "AK-47 | Redline (Field-Tested)", Name: "AK-47 | Redline", Type: "AK-47", Rarity: "Classified"},
			{ID: "2", HashName: "AK-47 | Slate (Factory New)", Name: "AK-47 | Slate", Type: "AK-47", Rarity: "Restricted"},
			{ID: "3", HashName: "AWP | Asiimov (Field-Tested)", Name: "AWP | Asiimov", Type: "AWP", Rarity: "Covert"},
			{ID: "4", HashName: "AK-47 | Unlisted (Well-Worn)", Name: "AK-47 | Unlisted", Type: "AK-47", Rarity: "Mil-Spec"},
		},
		nameIDs: map[string]int64{
			"AK-47 | Redline (Field-Tested)": 101,
			"AK-47 | Slate (Factory New)":    102,
			"AWP | Asiimov (Field-Tested)":   103,
			// "AK-47 | Unlisted" deliberately has no name-id.
		},
		books: map[int64]OrderBook{
			101: {LowestSellCents: 1050, HighestBuyCents: 980},
			102: {LowestSellCents: 250, HighestBuyCents: 200},
			103: {LowestSellCents: 9900, HighestBuyCents: 9500},
		},
	}
}

func TestResolverPrice(t *testing.T) {
	r := NewResolver(newFakeMarket())
	got, err := r.Price(context.Background(), "AK-47 | Redline (Field-Tested)")
	if err != nil {
		t.Fatalf("Price() unexpected error = %v", err)
	}
	// 1050 cents gross, net of fee: 10.50 * (1 - 0.10017...) rounded = 9.45
	if want := M(9.45); !got.Equal(want) {
		t.Errorf("Price() = %v, want %v", got, want)
	}
}

func TestResolverPriceMisses(t *testing.T) {
	src := newFakeMarket()
	src.books[103] = OrderBook{} // no sell order on the book
	r := NewResolver(src)

	if _, err := r.Price(context.Background(), "not an item"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Price(unknown) error = %v, want ErrNotFound", err)
	}
	if _, err := r.Price(context.Background(), "AWP | Asiimov (Field-Tested)"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Price(no sell order) error = %v, want ErrNotFound", err)
	}
}

func TestResolverPriceTransportFailure(t *testing.T) {
	src := newFakeMarket()
	src.err = fmt.Errorf("connection refused")
	r := NewResolver(src)
	_, err := r.Price(context.Background(), "AK-47 | Redline (Field-Tested)")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Price() error = %v, want a transport failure distinct from ErrNotFound", err)
	}
}

func TestResolverCaching(t *testing.T) {
	src := newFakeMarket()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewResolver(src).WithClock(func() time.Time { return now })
	ctx := context.Background()

	for range 3 {
		if _, err := r.Price(ctx, "AK-47 | Redline (Field-Tested)"); err != nil {
			t.Fatalf("Price() unexpected error = %v", err)
		}
	}
	if src.mappingFetches != 1 {
		t.Errorf("mapping fetched %d times within TTL, want 1", src.mappingFetches)
	}

	// Move past the mapping TTL: the very next resolution reloads it.
	now = now.Add(DefaultMappingTTL + time.Minute)
	if _, err := r.Price(ctx, "AK-47 | Redline (Field-Tested)"); err != nil {
		t.Fatalf("Price() unexpected error = %v", err)
	}
	if src.mappingFetches != 2 {
		t.Errorf("mapping fetched %d times after TTL expiry, want 2", src.mappingFetches)
	}
}

func TestResolverCatalogCaching(t *testing.T) {
	src := newFakeMarket()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r := NewResolver(src).WithClock(func() time.Time { return now })
	ctx := context.Background()

	if _, err := r.Search(ctx, "redline"); err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if _, err := r.Search(ctx, "asiimov"); err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if src.catalogFetches != 1 {
		t.Errorf("catalog fetched %d times within TTL, want 1", src.catalogFetches)
	}

	now = now.Add(DefaultCatalogTTL + time.Second)
	if _, err := r.Search(ctx, "slate"); err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if src.catalogFetches != 2 {
		t.Errorf("catalog fetched %d times after TTL expiry, want 2", src.catalogFetches)
	}
}

func TestResolverSearch(t *testing.T) {
	r := NewResolver(newFakeMarket())
	entries, err := r.Search(context.Background(), "ak-47")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	// 3 catalog matches, but the unlisted one has no name-id and is skipped.
	if len(entries) != 2 {
		t.Fatalf("Search() returned %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.SalePrice.IsZero() {
			t.Errorf("entry %q has no resolved price", e.HashName)
		}
	}
}

func TestResolverSearchCap(t *testing.T) {
	src := newFakeMarket()
	// Flood the catalog so the query matches far more than the cap.
	for i := range 50 {
		hash := fmt.Sprintf("AK-47 | Variant %d (Field-Tested)", i)
		src.catalog = append(src.catalog, CatalogItem{ID: hash, HashName: hash, Name: hash})
		src.nameIDs[hash] = 1000 + int64(i)
		src.books[1000+int64(i)] = OrderBook{LowestSellCents: 100}
	}
	r := NewResolver(src)
	entries, err := r.Search(context.Background(), "ak-47")
	if err != nil {
		t.Fatalf("Search() unexpected error = %v", err)
	}
	if len(entries) > DefaultMaxResults {
		t.Errorf("Search() returned %d entries, want at most %d", len(entries), DefaultMaxResults)
	}
	// The cap also bounds the order-book fan-out.
	if src.bookFetches > DefaultMaxResults {
		t.Errorf("Search() hit the order book %d times, want at most %d", src.bookFetches, DefaultMaxResults)
	}
}

func TestResolverLookupAndValidate(t *testing.T) {
	r := NewResolver(newFakeMarket())
	ctx := context.Background()

	e, err := r.Lookup(ctx, "AK-47 | Redline (Field-Tested)")
	if err != nil {
		t.Fatalf("Lookup() unexpected error = %v", err)
	}
	if e.NameID != 101 || e.Name != "AK-47 | Redline" {
		t.Errorf("Lookup() = %+v, want name-id 101 and display name", e)
	}

	if !r.Validate(ctx, "AK-47 | Redline (Field-Tested)") {
		t.Error("Validate(known) = false, want true")
	}
	if r.Validate(ctx, "P250 | Imaginary (Factory New)") {
		t.Error("Validate(unknown) = true, want false")
	}
	// Known in the catalog but without a name-id: not addable.
	if r.Validate(ctx, "AK-47 | Unlisted (Well-Worn)") {
		t.Error("Validate(no name-id) = true, want false")
	}
}
