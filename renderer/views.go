package renderer

import (
	"fmt"

	"github.com/etnz/skinvault"
	"github.com/etnz/skinvault/date"
)

// Row is one item of the inventory as displayed in reports.
type Row struct {
	Name      string
	Condition string
	BuyDate   string
	BuyPrice  string
	Current   string
	Profit    string
	Percent   string
	Advice    string
	Points    int // number of recorded price observations
}

// Performer names an item and its profit for the best/worst lines.
type Performer struct {
	Name    string
	Profit  string
	Percent string
}

// Summary is the view behind the portfolio summary report.
type Summary struct {
	Date          string
	ItemCount     int
	TotalInvested string
	CurrentValue  string
	TotalProfit   string
	ProfitSign    string
	Best          *Performer
	Worst         *Performer
	Rows          []Row
}

// NewSummary builds the summary view for today.
func NewSummary(items []skinvault.Item) *Summary {
	stats := skinvault.NewStats(items)
	s := &Summary{
		Date:          date.Today().String(),
		ItemCount:     stats.ItemCount,
		TotalInvested: stats.TotalInvested.String(),
		CurrentValue:  stats.CurrentValue.String(),
		TotalProfit:   stats.TotalProfit.SignedString(),
		ProfitSign:    stats.ProfitPercentage.SignedString(),
	}
	if stats.BestPerformer != nil {
		s.Best = performer(stats.BestPerformer)
	}
	if stats.WorstPerformer != nil {
		s.Worst = performer(stats.WorstPerformer)
	}
	for i := range items {
		s.Rows = append(s.Rows, row(&items[i]))
	}
	return s
}

func performer(it *skinvault.Item) *Performer {
	return &Performer{
		Name:    it.Name,
		Profit:  it.Profit().SignedString(),
		Percent: it.ProfitPercent().SignedString(),
	}
}

func row(it *skinvault.Item) Row {
	r := Row{
		Name:      it.Name,
		Condition: it.Condition,
		BuyDate:   it.BuyDate.String(),
		BuyPrice:  it.BuyPrice.String(),
		Current:   "-",
		Profit:    it.Profit().SignedString(),
		Percent:   it.ProfitPercent().SignedString(),
		Advice:    string(skinvault.RecommendDefault(it)),
		Points:    len(it.History),
	}
	if it.HasPrice() {
		r.Current = it.CurrentPrice.String()
	}
	return r
}

// List is the view behind the plain inventory table.
type List struct {
	ItemCount  int
	TotalValue string
	Rows       []Row
}

// NewList builds the inventory view.
func NewList(items []skinvault.Item) *List {
	l := &List{
		ItemCount:  len(items),
		TotalValue: skinvault.CurrentValue(items).String(),
	}
	for i := range items {
		l.Rows = append(l.Rows, row(&items[i]))
	}
	return l
}

// SearchRow is one catalog match with its current ask.
type SearchRow struct {
	HashName string
	Type     string
	Rarity   string
	Price    string
}

// Search is the view behind the catalog search report.
type Search struct {
	Query string
	Rows  []SearchRow
}

// NewSearch builds the search view from resolved catalog entries.
func NewSearch(query string, entries []skinvault.Entry) *Search {
	s := &Search{Query: query}
	for _, e := range entries {
		r := SearchRow{HashName: e.HashName, Type: e.Type, Rarity: e.Rarity, Price: "-"}
		if !e.SalePrice.IsZero() {
			r.Price = e.SalePrice.String()
		}
		s.Rows = append(s.Rows, r)
	}
	return s
}

// HistoryRow is one recorded price observation.
type HistoryRow struct {
	When  string
	Price string
}

// History is the view behind the single-item price history report.
type History struct {
	Name     string
	HashName string
	Current  string
	Rows     []HistoryRow
}

// NewHistory builds the history view for one item.
func NewHistory(it *skinvault.Item) *History {
	h := &History{Name: it.Name, HashName: it.HashName, Current: "-"}
	if it.HasPrice() {
		h.Current = it.CurrentPrice.String()
	}
	for _, p := range it.History {
		h.Rows = append(h.Rows, HistoryRow{
			When:  p.Time.Format("2006-01-02 15:04"),
			Price: p.Price.String(),
		})
	}
	return h
}

// SettingsView is the view behind the settings report.
type SettingsView struct {
	AutoRefresh string
	Interval    string
	Threshold   string
	Theme       string
}

// NewSettings builds the settings view.
func NewSettings(st skinvault.Settings) *SettingsView {
	auto := "off"
	if st.AutoRefresh {
		auto = "on"
	}
	return &SettingsView{
		AutoRefresh: auto,
		Interval:    fmt.Sprint(st.Interval()),
		Threshold:   st.AlertThreshold.String(),
		Theme:       st.Theme,
	}
}
