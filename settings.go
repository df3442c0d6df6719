package skinvault

import (
	"fmt"
	"slices"
	"time"
)

// Settings drives the auto-refresh loop and the presentation.
//
// They are loaded once at startup, mutated by the settings command, and
// persisted on every change. The scheduler never captures them: it re-reads
// the latest value before each tick.
type Settings struct {
	AutoRefresh    bool    `json:"autoRefresh"`
	RefreshMillis  int     `json:"refreshInterval"`     // one of RefreshIntervals
	AlertThreshold Percent `json:"priceAlertThreshold"` // profit percent that triggers an alert
	Theme          string  `json:"theme"`               // "dark" or "light"
}

// RefreshIntervals is the set of supported refresh intervals, in milliseconds.
var RefreshIntervals = []int{60_000, 300_000, 600_000, 1_800_000, 3_600_000}

// DefaultSettings returns the settings used before the user ever saved any.
func DefaultSettings() Settings {
	return Settings{
		AutoRefresh:    true,
		RefreshMillis:  60_000,
		AlertThreshold: 50,
		Theme:          "dark",
	}
}

// Interval returns the refresh interval as a duration.
func (s Settings) Interval() time.Duration {
	return time.Duration(s.RefreshMillis) * time.Millisecond
}

// Validate checks that the settings hold supported values.
func (s Settings) Validate() error {
	if !slices.Contains(RefreshIntervals, s.RefreshMillis) {
		return fmt.Errorf("unsupported refresh interval %dms, want one of %v", s.RefreshMillis, RefreshIntervals)
	}
	if s.Theme != "dark" && s.Theme != "light" {
		return fmt.Errorf("unsupported theme %q, want dark or light", s.Theme)
	}
	return nil
}
