package session

import (
	"time"

	"github.com/andy/forestfocus/internal/domain"
)

// Clock supplies the current time
type Clock interface {
	Now() time.Time
}

// ActivityMonitor reports when the user last interacted and whether the
// program is in the foreground
type ActivityMonitor interface {
	LastActivity() time.Time
	IsForeground() bool
}

// Presenter receives a full view after every transition and tick. It must not
// call back into the controller.
type Presenter interface {
	Render(v View)
}

// Ticker is the cancellable periodic trigger that calls Tick once per second.
// After Disarm returns, no tick from the previous Arm may be delivered.
type Ticker interface {
	Arm()
	Disarm()
}

// RewardSink accrues rewards for completed focus phases
type RewardSink interface {
	Award(focusMinutes float64) domain.RewardEvent
	Totals() domain.RewardTotals
}

// Recorder is told about every completed focus phase
type Recorder interface {
	RecordFocus(rec domain.FocusRecord) error
}

// PresenterFunc adapts a function to Presenter
type PresenterFunc func(View)

func (f PresenterFunc) Render(v View) { f(v) }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock
func SystemClock() Clock { return systemClock{} }

type nopPresenter struct{}

func (nopPresenter) Render(View) {}

type nopTicker struct{}

func (nopTicker) Arm()    {}
func (nopTicker) Disarm() {}
