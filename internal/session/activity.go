package session

import "time"

// ActivityTracker is an ActivityMonitor fed by the host's input events. Like
// the controller it is only touched from the host's control goroutine.
type ActivityTracker struct {
	clock      Clock
	last       time.Time
	background bool
}

// NewActivityTracker starts out foreground with activity recorded now
func NewActivityTracker(clock Clock) *ActivityTracker {
	if clock == nil {
		clock = SystemClock()
	}
	return &ActivityTracker{clock: clock, last: clock.Now()}
}

// Touch records user input
func (a *ActivityTracker) Touch() {
	a.last = a.clock.Now()
}

// SetForeground records whether the program has focus
func (a *ActivityTracker) SetForeground(fg bool) {
	a.background = !fg
}

func (a *ActivityTracker) LastActivity() time.Time { return a.last }

func (a *ActivityTracker) IsForeground() bool { return !a.background }
