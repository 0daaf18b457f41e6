package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// teaTicker is a session.Ticker driven by tea.Tick. Every Arm and Disarm
// starts a new generation; a tickMsg from an older generation is stale and
// must be dropped, so a disarmed ticker never delivers.
type teaTicker struct {
	interval time.Duration
	gen      int
	armed    bool
	pending  bool // armed but the first tick is not scheduled yet
}

func newTeaTicker(interval time.Duration) *teaTicker {
	return &teaTicker{interval: interval}
}

func (t *teaTicker) Arm() {
	if t.armed {
		return
	}
	t.armed = true
	t.gen++
	t.pending = true
}

func (t *teaTicker) Disarm() {
	if !t.armed {
		return
	}
	t.armed = false
	t.gen++
	t.pending = false
}

// Cmd schedules the first tick of a fresh arming. It returns nil when there is
// nothing to schedule, so it is safe to call after every Update.
func (t *teaTicker) Cmd() tea.Cmd {
	if !t.pending {
		return nil
	}
	t.pending = false
	return t.next()
}

// Current reports whether msg belongs to the live arming
func (t *teaTicker) Current(msg tickMsg) bool {
	return t.armed && msg.gen == t.gen
}

func (t *teaTicker) next() tea.Cmd {
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}
