package skinvault

import (
	"context"
	"sync"
	"time"
)

// Debounce defaults, matching the interactive search box behavior.
const (
	DefaultQuietPeriod = 300 * time.Millisecond
	DefaultMinQuery    = 3
)

// Debouncer coalesces a stream of query edits into at most one in-flight
// search.
//
// A search fires only once the query has been left unchanged for the quiet
// period and is at least MinQuery long; Force skips both conditions. At most
// one quiet-period timer is pending at any time: every new input resets it.
// Starting a search cancels the previous one's context, so a logically stale
// response can never be applied: the search callback must stop (and discard
// any received result) once its context is done.
//
// Close cancels the pending timer and the in-flight search; nothing fires
// after it returns.
type Debouncer struct {
	// Quiet is the duration the query must stay unchanged before a search.
	Quiet time.Duration
	// MinQuery is the minimum query length for a non-forced search.
	MinQuery int

	search func(ctx context.Context, query string)

	mu     sync.Mutex
	timer  *time.Timer
	arm    uint64             // invalidates timers that already fired but not yet ran
	cancel context.CancelFunc // cancels the current in-flight search
	gen    uint64             // generation of the current search
	closed bool
}

// NewDebouncer returns a debouncer invoking search for each fired query.
// The callback runs on its own goroutine; its context is cancelled as soon
// as a newer search starts or the debouncer is closed.
func NewDebouncer(search func(ctx context.Context, query string)) *Debouncer {
	return &Debouncer{
		Quiet:    DefaultQuietPeriod,
		MinQuery: DefaultMinQuery,
		search:   search,
	}
}

// Input records a new state of the query text. It arms (or re-arms) the
// quiet-period timer; too-short queries only clear the pending timer.
func (d *Debouncer) Input(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.stopTimer()
	if len(query) < d.MinQuery {
		return
	}
	seq := d.arm
	d.timer = time.AfterFunc(d.Quiet, func() { d.fire(seq, query) })
}

// Force fires a search for the query immediately, regardless of length and
// of any quiet period. The pending timer, if any, is dropped.
func (d *Debouncer) Force(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.stopTimer()
	d.start(query)
}

// fire runs when the quiet-period timer expires. A timer that was stopped
// after having already fired carries a stale seq and is discarded here.
func (d *Debouncer) fire(seq uint64, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed || seq != d.arm {
		return
	}
	d.timer = nil
	d.start(query)
}

// start launches a new search generation, cancelling the previous one.
// Callers hold d.mu.
func (d *Debouncer) start(query string) {
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.gen++
	go d.search(ctx, query)
}

// stopTimer drops the pending quiet-period timer. Callers hold d.mu.
func (d *Debouncer) stopTimer() {
	d.arm++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Generation returns the number of searches started so far. A search
// callback that recorded the generation at start time can double-check it is
// still the current one before applying results.
func (d *Debouncer) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen
}

// Close cancels any pending timer and any in-flight search. Further Input
// and Force calls are ignored.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	d.stopTimer()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
