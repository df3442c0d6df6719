package skinvault

import (
	"time"

	"github.com/etnz/skinvault/date"
)

// Item is a single purchased market item tracked by the vault.
//
// BuyPrice and BuyDate are fixed at purchase time and never change. The
// CurrentPrice starts as the zero Money ("no price") and is only ever set by
// a successful price resolution, which also appends a point to History.
// History is append-only and chronological.
type Item struct {
	ID           string       `json:"id"`
	HashName     string       `json:"hashName"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Rarity       string       `json:"rarity"`
	RarityColor  string       `json:"rarityColor,omitempty"`
	Condition    string       `json:"condition,omitempty"`
	Float        float64      `json:"float,omitempty"`
	BuyPrice     Money        `json:"buyPrice"`
	BuyDate      date.Date    `json:"buyDate"`
	CurrentPrice Money        `json:"currentPrice,omitempty"`
	History      []PricePoint `json:"priceHistory"`
	ImageURL     string       `json:"imageUrl,omitempty"`
}

// PricePoint is one observation of an item's sell price. Points are created
// only by successful resolutions and are never mutated or removed.
type PricePoint struct {
	Price Money     `json:"price"`
	Time  time.Time `json:"date"`
	Stamp int64     `json:"timestamp"` // unix milliseconds
}

// Point builds a PricePoint observed at the given instant.
func Point(price Money, at time.Time) PricePoint {
	return PricePoint{Price: price, Time: at, Stamp: at.UnixMilli()}
}

// HasPrice reports whether the item's price was ever resolved.
func (i *Item) HasPrice() bool { return !i.CurrentPrice.IsZero() }

// Value returns the item's current price, falling back on the buy price when
// no price was ever resolved.
func (i *Item) Value() Money {
	if i.HasPrice() {
		return i.CurrentPrice
	}
	return i.BuyPrice
}

// Profit returns the item's unrealized profit.
func (i *Item) Profit() Money { return i.Value().Sub(i.BuyPrice) }

// ProfitPercent returns the item's profit relative to its buy price.
// It is 0 when the buy price is 0.
func (i *Item) ProfitPercent() Percent { return i.Profit().PercentOf(i.BuyPrice) }

// SetPrice records a newly resolved price observed at the given instant:
// it updates the current price and appends one history point.
func (i *Item) SetPrice(price Money, at time.Time) {
	i.CurrentPrice = price
	i.History = append(i.History, Point(price, at))
}

// Entry is one catalog search result: a canonical market listing with its
// current sell price snapshot. Entries are ephemeral, they only seed new
// items or confirm a hash name.
type Entry struct {
	NameID      int64
	HashName    string
	Name        string
	Type        string
	Rarity      string
	RarityColor string
	Image       string
	SalePrice   Money
}
