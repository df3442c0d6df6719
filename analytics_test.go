package skinvault

import (
	"testing"

	"github.com/etnz/skinvault/date"
)

// bought is a helper to build an item with a buy price and an optional
// resolved current price (0 means never resolved).
func bought(name string, buy, current float64) Item {
	it := Item{
		ID:       name,
		HashName: name,
		Name:     name,
		BuyPrice: M(buy),
		BuyDate:  date.MustParse("2024-01-15"),
	}
	if current != 0 {
		it.CurrentPrice = M(current)
	}
	return it
}

func TestStatsIdentity(t *testing.T) {
	items := []Item{
		bought("a", 100, 115),
		bought("b", 50, 40),
		bought("c", 30, 0), // never resolved, counts at buy price
	}
	s := NewStats(items)

	if want := M(180); !s.TotalInvested.Equal(want) {
		t.Errorf("TotalInvested = %v, want %v", s.TotalInvested, want)
	}
	if want := M(185); !s.CurrentValue.Equal(want) {
		t.Errorf("CurrentValue = %v, want %v", s.CurrentValue, want)
	}
	// currentValue - totalInvested == totalProfit, always.
	if diff := s.CurrentValue.Sub(s.TotalInvested); !diff.Equal(s.TotalProfit) {
		t.Errorf("CurrentValue-TotalInvested = %v, want TotalProfit = %v", diff, s.TotalProfit)
	}
	if s.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", s.ItemCount)
	}
}

func TestStatsZeroInvested(t *testing.T) {
	items := []Item{bought("free", 0, 10)}
	s := NewStats(items)
	if !s.ProfitPercentage.Equal(0) {
		t.Errorf("ProfitPercentage = %v, want 0 when nothing was invested", s.ProfitPercentage)
	}
	free := bought("free", 0, 10)
	if !free.ProfitPercent().Equal(0) {
		t.Error("per-item profit percent should be 0 on a 0 buy price")
	}
}

func TestStatsPerformers(t *testing.T) {
	items := []Item{
		bought("flat", 100, 100), // 0%
		bought("up", 100, 130),   // +30%
		bought("down", 100, 80),  // -20%
	}
	s := NewStats(items)
	if s.BestPerformer == nil || s.BestPerformer.Name != "up" {
		t.Errorf("BestPerformer = %v, want up", s.BestPerformer)
	}
	if s.WorstPerformer == nil || s.WorstPerformer.Name != "down" {
		t.Errorf("WorstPerformer = %v, want down", s.WorstPerformer)
	}

	// Best's percent dominates all, worst's is dominated by all.
	for i := range items {
		if s.BestPerformer.ProfitPercent() < items[i].ProfitPercent() {
			t.Errorf("best performer beaten by %s", items[i].Name)
		}
		if s.WorstPerformer.ProfitPercent() > items[i].ProfitPercent() {
			t.Errorf("worst performer beats %s", items[i].Name)
		}
	}
}

func TestStatsPerformersTieBreak(t *testing.T) {
	// All equal: the first item wins both titles, deterministically.
	items := []Item{bought("first", 100, 110), bought("second", 50, 55)}
	s := NewStats(items)
	if s.BestPerformer.Name != "first" || s.WorstPerformer.Name != "first" {
		t.Errorf("tie-break: best=%s worst=%s, want first for both", s.BestPerformer.Name, s.WorstPerformer.Name)
	}
}

func TestStatsSingleItem(t *testing.T) {
	s := NewStats([]Item{bought("only", 10, 12)})
	if s.BestPerformer != s.WorstPerformer {
		t.Error("with one item, best and worst must be the same item")
	}
}

func TestStatsEmpty(t *testing.T) {
	s := NewStats(nil)
	if s.BestPerformer != nil || s.WorstPerformer != nil {
		t.Error("empty collection must have no performers")
	}
	if !s.ProfitPercentage.Equal(0) {
		t.Errorf("ProfitPercentage = %v, want 0", s.ProfitPercentage)
	}
}

func TestRecommend(t *testing.T) {
	testCases := []struct {
		name    string
		current float64
		want    Recommendation
	}{
		{"Sell at +15%", 115, Sell},
		{"Sell exactly at threshold", 110, Sell},
		{"Hold at -2%", 98, Hold},
		{"Monitor at -10%", 90, Monitor},
		{"Monitor exactly at hold threshold", 95, Monitor},
		{"Hold when never resolved", 0, Hold},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			it := bought("x", 100, tc.current)
			if got := RecommendDefault(&it); got != tc.want {
				t.Errorf("RecommendDefault(buy=100, current=%v) = %q, want %q", tc.current, got, tc.want)
			}
		})
	}
}
