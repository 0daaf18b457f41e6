package session

import "time"

// IntervalTicker is a Ticker backed by time.Ticker. The owner selects on C()
// from the same goroutine that calls the controller; C() is nil while disarmed
// so a select on it blocks.
type IntervalTicker struct {
	interval time.Duration
	t        *time.Ticker
}

// NewIntervalTicker returns a disarmed ticker
func NewIntervalTicker(interval time.Duration) *IntervalTicker {
	return &IntervalTicker{interval: interval}
}

func (t *IntervalTicker) Arm() {
	if t.t != nil {
		return
	}
	t.t = time.NewTicker(t.interval)
}

func (t *IntervalTicker) Disarm() {
	if t.t == nil {
		return
	}
	t.t.Stop()
	t.t = nil
}

// C returns the tick channel of the current arming, or nil
func (t *IntervalTicker) C() <-chan time.Time {
	if t.t == nil {
		return nil
	}
	return t.t.C
}

// Armed reports whether ticks are being delivered
func (t *IntervalTicker) Armed() bool {
	return t.t != nil
}
