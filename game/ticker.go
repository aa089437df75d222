package game

import "time"

// Ticker fires at a fixed interval. It is polled from the frame loop
// rather than driving its own goroutine, so a tick never overlaps another.
type Ticker struct {
	interval time.Duration
	last     time.Time
	running  bool
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Start arms the ticker; the first tick is due one interval after now.
func (t *Ticker) Start(now time.Time) {
	t.last = now
	t.running = true
}

func (t *Ticker) Stop() {
	t.running = false
}

func (t *Ticker) Running() bool {
	return t.running
}

// Due reports whether a tick should run at now, and consumes it if so.
func (t *Ticker) Due(now time.Time) bool {
	if !t.running || now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}
