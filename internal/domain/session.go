package domain

import "fmt"

type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// Label returns the display name of the phase
func (p Phase) Label() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Focus"
}

type SessionStatus string

const (
	SessionIdle      SessionStatus = "idle"
	SessionRunning   SessionStatus = "running"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
)

// PauseReason records who or what stopped a running session
type PauseReason string

const (
	PauseNone     PauseReason = ""
	PauseUser     PauseReason = "user"
	PauseAuto     PauseReason = "auto"
	PauseSettings PauseReason = "settings"
)

// Controls says which of the start/pause/reset actions are currently available
type Controls struct {
	Start bool
	Pause bool
	Reset bool
}

// ControlsFor returns the control availability for a session status
func ControlsFor(status SessionStatus) Controls {
	switch status {
	case SessionRunning:
		return Controls{Pause: true, Reset: true}
	case SessionPaused, SessionCompleted:
		return Controls{Start: true, Reset: true}
	default:
		return Controls{Start: true}
	}
}

// FormatClock formats seconds as MM:SS. Minutes are not wrapped at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
