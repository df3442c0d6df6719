package skinvault

// This file derives statistics from the item collection. Everything here is
// a pure function of its inputs: no mutation, no I/O.

// Stats is the aggregate view of the collection. It is recomputed on demand
// and never persisted.
type Stats struct {
	TotalInvested    Money
	CurrentValue     Money
	TotalProfit      Money
	ProfitPercentage Percent
	ItemCount        int
	BestPerformer    *Item
	WorstPerformer   *Item
}

// TotalInvested sums the buy prices of all items.
func TotalInvested(items []Item) Money {
	var total Money
	for _, it := range items {
		total = total.Add(it.BuyPrice)
	}
	return total
}

// CurrentValue sums the current value of all items, falling back on the buy
// price for items never resolved.
func CurrentValue(items []Item) Money {
	var total Money
	for _, it := range items {
		total = total.Add(it.Value())
	}
	return total
}

// TotalProfit sums the unrealized profit of all items. It always equals
// CurrentValue minus TotalInvested.
func TotalProfit(items []Item) Money {
	var total Money
	for _, it := range items {
		total = total.Add(it.Profit())
	}
	return total
}

// NewStats computes the aggregate statistics for the collection.
//
// Best and worst performers are ranked by per-item profit percentage; on a
// tie the first item in collection order wins, so the result is
// deterministic. Both are nil on an empty collection, and equal on a
// single-item one.
func NewStats(items []Item) Stats {
	s := Stats{
		TotalInvested: TotalInvested(items),
		CurrentValue:  CurrentValue(items),
		TotalProfit:   TotalProfit(items),
		ItemCount:     len(items),
	}
	s.ProfitPercentage = s.TotalProfit.PercentOf(s.TotalInvested)

	for i := range items {
		pct := items[i].ProfitPercent()
		if s.BestPerformer == nil || pct > s.BestPerformer.ProfitPercent() {
			s.BestPerformer = &items[i]
		}
		if s.WorstPerformer == nil || pct < s.WorstPerformer.ProfitPercent() {
			s.WorstPerformer = &items[i]
		}
	}
	return s
}

// Recommendation is the suggested action for a single item.
type Recommendation string

const (
	Sell    Recommendation = "sell"
	Hold    Recommendation = "hold"
	Monitor Recommendation = "monitor closely"
)

// Default thresholds for the recommendation, in percent.
const (
	SellThreshold = 10
	HoldThreshold = -5
)

// Recommend returns the suggested action for an item given the sell and hold
// thresholds. An item with no resolved price is always a Hold: without
// evidence the buy price stands.
func Recommend(it *Item, sell, hold Percent) Recommendation {
	if !it.HasPrice() {
		return Hold
	}
	pct := it.ProfitPercent()
	switch {
	case pct >= sell:
		return Sell
	case pct > hold:
		return Hold
	default:
		return Monitor
	}
}

// RecommendDefault applies the default thresholds.
func RecommendDefault(it *Item) Recommendation {
	return Recommend(it, SellThreshold, HoldThreshold)
}
