package hotkey

import (
	"sync"
	"time"
)

// debouncer suppresses signals arriving within interval of the last
// accepted signal, absorbing key repeat and switch bounce.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{interval: interval}
}

func (d *debouncer) Allow(now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.last.IsZero() && now.Sub(d.last) < d.interval {
		return false
	}
	d.last = now
	return true
}
