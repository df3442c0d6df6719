package skinvault

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// PriceSource is the resolver capability the scheduler needs.
type PriceSource interface {
	Price(ctx context.Context, hashName string) (Money, error)
}

// Scheduler periodically re-resolves the price of every tracked item.
//
// The scheduler never owns the collection or the settings: it reads both
// through provider funcs before every tick, so a settings change between
// ticks is honored without a restart, and persists updates through a single
// commit callback.
//
// Ticks never overlap: the loop runs them sequentially, and RunTick itself
// is serialized with a mutex so a manual refresh cannot race a scheduled
// one. Within a tick all items are resolved concurrently, and the commit and
// notifications wait for every resolution to finish.
type Scheduler struct {
	source   PriceSource
	notify   Notifier
	settings func() Settings
	load     func() []Item
	commit   func([]Item) error

	now  func() time.Time
	wake chan struct{}

	tickMu sync.Mutex
}

// NewScheduler assembles a scheduler. load returns the latest item
// collection, commit persists the full updated collection, settings returns
// the latest configuration.
func NewScheduler(source PriceSource, notify Notifier, settings func() Settings, load func() []Item, commit func([]Item) error) *Scheduler {
	return &Scheduler{
		source:   source,
		notify:   notify,
		settings: settings,
		load:     load,
		commit:   commit,
		now:      time.Now,
		wake:     make(chan struct{}, 1),
	}
}

// WithClock replaces the scheduler's clock, for deterministic tests.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// Wake nudges the loop to re-read the settings immediately, typically after
// the owner changed the refresh interval or toggled auto-refresh.
func (s *Scheduler) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// idlePoll is how often a disabled (or empty) scheduler re-checks whether it
// should start ticking, absent a Wake.
const idlePoll = time.Second

// Run executes the refresh loop until the context is cancelled. A tick runs
// only while auto-refresh is enabled and the collection is non-empty; the
// interval is re-read from the settings provider on every round.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		st := s.settings()
		active := st.AutoRefresh && len(s.load()) > 0

		wait := st.Interval()
		if !active {
			wait = idlePoll
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-s.wake:
			timer.Stop()
			continue
		case <-timer.C:
		}

		if !active {
			continue
		}
		if _, err := s.RunTick(ctx); err != nil {
			// RunTick already notified; keep ticking.
			log.Printf("refresh tick: %v", err)
		}
	}
}

// RunTick performs one refresh pass over the whole collection and returns
// how many items changed price.
//
// Per item: resolve the current price; on a changed (and non-zero) price,
// set it and append one history point stamped at tick time. Lookup misses
// and transport failures leave the item untouched. After the full join the
// collection is persisted once, then notifications fire: a refresh count (or
// "up to date"), one profit alert per changed item whose profit meets the
// alert threshold, and at most one error notification for all transport
// failures of the tick.
func (s *Scheduler) RunTick(ctx context.Context) (updated int, err error) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	st := s.settings()
	items := s.load()
	at := s.now()

	type result struct {
		price Money
		err   error
	}
	results := make([]result, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			price, err := s.source.Price(ctx, items[i].HashName)
			results[i] = result{price: price, err: err}
		}()
	}
	wg.Wait()

	var alerts []string
	var failures int
	for i := range items {
		res := results[i]
		if res.err != nil {
			if !errors.Is(res.err, ErrNotFound) {
				failures++
				log.Printf("refresh %q: %v", items[i].HashName, res.err)
			}
			continue
		}
		if res.price.IsZero() || res.price.Equal(items[i].CurrentPrice) {
			continue
		}
		items[i].SetPrice(res.price, at)
		updated++
		if pct := items[i].ProfitPercent(); pct >= st.AlertThreshold {
			alerts = append(alerts, fmt.Sprintf("%s (%s)", items[i].Name, pct.SignedString()))
		}
	}

	if err := s.commit(items); err != nil {
		s.notify.Error("Failed to save refreshed prices")
		return updated, fmt.Errorf("persist items: %w", err)
	}

	if updated > 0 {
		plural := "s"
		if updated == 1 {
			plural = ""
		}
		s.notify.Success(fmt.Sprintf("Refreshed %d price%s", updated, plural))
	} else {
		s.notify.Info("All prices are up to date")
	}
	for _, a := range alerts {
		s.notify.Success("🚀 Profit Alert: " + a)
	}
	if failures > 0 {
		s.notify.Error("Failed to refresh prices")
	}
	return updated, nil
}
