package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/andy/forestfocus/internal/domain"
)

// DefaultIdleLimit is how long without input before a running session pauses itself
const DefaultIdleLimit = 60 * time.Second

const (
	msgReady         = "Ready to focus."
	msgBreak         = "Break time 🌿"
	msgPausedByUser  = "Paused by you."
	msgPausedIdle    = "Paused (tab not active or idle)."
	msgPausedHidden  = "Paused (tab not active)."
	msgAdjusted      = "Adjusted settings."
	msgSessionDone   = "Session complete! 🎉"
	msgAllCyclesDone = "All cycles complete 🎉"
	phaseLabelDone   = "Done"
)

// State is a read-only snapshot of the session
type State struct {
	Settings    domain.Settings
	Cycle       int
	Phase       domain.Phase
	Remaining   int // seconds left in the current phase
	Status      domain.SessionStatus
	PauseReason domain.PauseReason
	Message     string
	ActivatedAt time.Time // last transition into running
}

// Options wires a Controller. Only Settings is required; nil collaborators
// get harmless defaults and a nil Rewards disables rewards.
type Options struct {
	Settings   domain.Settings
	GrowthMode domain.GrowthMode
	IdleLimit  time.Duration // <= 0 disables the idle check; foreground is still checked

	Clock     Clock
	Activity  ActivityMonitor
	Presenter Presenter
	Ticker    Ticker
	Rewards   RewardSink
	Recorder  Recorder
	Logger    *slog.Logger
}

// Controller is the focus/break state machine. It is not safe for concurrent
// use: the host calls every method, Tick included, from one goroutine.
type Controller struct {
	clock     Clock
	activity  ActivityMonitor
	presenter Presenter
	ticker    Ticker
	rewards   RewardSink
	recorder  Recorder
	logger    *slog.Logger

	growthMode domain.GrowthMode
	idleLimit  time.Duration

	state          State
	phaseStartedAt time.Time
	lastReward     *domain.RewardEvent
}

// NewController builds a controller in the idle state and renders it once
func NewController(opts Options) *Controller {
	c := &Controller{
		clock:      opts.Clock,
		activity:   opts.Activity,
		presenter:  opts.Presenter,
		ticker:     opts.Ticker,
		rewards:    opts.Rewards,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		growthMode: opts.GrowthMode,
		idleLimit:  opts.IdleLimit,
	}
	if c.clock == nil {
		c.clock = SystemClock()
	}
	if c.activity == nil {
		c.activity = NewActivityTracker(c.clock)
	}
	if c.presenter == nil {
		c.presenter = nopPresenter{}
	}
	if c.ticker == nil {
		c.ticker = nopTicker{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.growthMode == "" {
		c.growthMode = domain.GrowthContinuous
	}

	c.Reset(opts.Settings)
	return c
}

// Start begins or resumes the countdown. It is a no-op while running.
func (c *Controller) Start() {
	if c.state.Status == domain.SessionRunning {
		return
	}
	if c.state.Remaining <= 0 {
		c.state.Remaining = c.phaseDuration()
	}

	now := c.clock.Now()
	c.state.Status = domain.SessionRunning
	c.state.PauseReason = domain.PauseNone
	c.state.ActivatedAt = now
	c.state.Message = c.runningMessage()
	if c.phaseStartedAt.IsZero() {
		c.phaseStartedAt = now
	}

	c.ticker.Arm()
	c.logger.Debug("session started",
		"phase", c.state.Phase, "cycle", c.state.Cycle, "remaining", c.state.Remaining)
	c.render()
}

// Pause stops the countdown. It is a no-op unless running.
func (c *Controller) Pause(reason domain.PauseReason) {
	msg := msgPausedByUser
	switch reason {
	case domain.PauseAuto:
		msg = msgPausedIdle
	case domain.PauseSettings:
		msg = msgAdjusted
	case domain.PauseNone:
		reason = domain.PauseUser
	}
	c.pause(reason, msg)
}

// NotifyHidden pauses a running session as soon as the host loses focus,
// without waiting for the next tick.
func (c *Controller) NotifyHidden() {
	c.pause(domain.PauseAuto, msgPausedHidden)
}

func (c *Controller) pause(reason domain.PauseReason, msg string) {
	if c.state.Status != domain.SessionRunning {
		return
	}
	c.ticker.Disarm()
	c.state.Status = domain.SessionPaused
	c.state.PauseReason = reason
	c.state.Message = msg
	c.logger.Debug("session paused", "reason", reason, "remaining", c.state.Remaining)
	c.render()
}

// Reset applies clamped settings and returns to the idle start of cycle one.
// Legal in every state.
func (c *Controller) Reset(settings domain.Settings) {
	c.reset(settings)
	c.state.Message = msgReady
	c.render()
}

func (c *Controller) reset(settings domain.Settings) {
	c.ticker.Disarm()
	c.state.Settings = settings.Clamp()
	c.state.Cycle = 1
	c.state.Phase = domain.PhaseFocus
	c.state.Remaining = c.state.Settings.FocusSeconds()
	c.state.Status = domain.SessionIdle
	c.state.PauseReason = domain.PauseNone
	c.state.ActivatedAt = time.Time{}
	c.phaseStartedAt = time.Time{}
}

// Reconfigure applies new settings, restarting the countdown if it was
// running. A session that was not running keeps its status message.
func (c *Controller) Reconfigure(settings domain.Settings) {
	wasRunning := c.state.Status == domain.SessionRunning
	c.pause(domain.PauseSettings, msgAdjusted)
	message := c.state.Message
	c.reset(settings)
	c.state.Message = message
	if wasRunning {
		c.Start()
		return
	}
	c.render()
}

// Tick advances a running session by one second. An inactive or background
// host pauses the session instead.
func (c *Controller) Tick() {
	if c.state.Status != domain.SessionRunning {
		return
	}
	if c.inactive() {
		c.pause(domain.PauseAuto, msgPausedIdle)
		return
	}

	c.state.Remaining--
	if c.state.Remaining <= 0 {
		c.state.Remaining = 0
		c.completePhase()
	}
	c.render()
}

func (c *Controller) inactive() bool {
	if !c.activity.IsForeground() {
		return true
	}
	if c.idleLimit <= 0 {
		return false
	}
	return c.clock.Now().Sub(c.activity.LastActivity()) > c.idleLimit
}

func (c *Controller) completePhase() {
	s := c.state.Settings

	if c.state.Phase == domain.PhaseFocus {
		c.finishFocus()
		switch {
		case s.HasBreak():
			c.enterPhase(domain.PhaseBreak, c.state.Cycle)
		case c.state.Cycle < s.Cycles:
			c.enterPhase(domain.PhaseFocus, c.state.Cycle+1)
		default:
			c.complete(msgSessionDone)
		}
		return
	}

	if c.state.Cycle < s.Cycles {
		c.enterPhase(domain.PhaseFocus, c.state.Cycle+1)
		return
	}
	c.complete(msgAllCyclesDone)
}

func (c *Controller) enterPhase(phase domain.Phase, cycle int) {
	c.state.Phase = phase
	c.state.Cycle = cycle
	c.state.Remaining = c.phaseDuration()
	c.state.Message = c.runningMessage()
	c.phaseStartedAt = c.clock.Now()
	c.logger.Debug("phase started", "phase", phase, "cycle", cycle)
}

func (c *Controller) complete(msg string) {
	c.ticker.Disarm()
	c.state.Status = domain.SessionCompleted
	c.state.Message = msg
	c.phaseStartedAt = time.Time{}
	c.logger.Info("session completed", "cycles", c.state.Settings.Cycles)
}

// finishFocus emits the reward for the focus phase that just ended
func (c *Controller) finishFocus() {
	s := c.state.Settings
	rec := domain.FocusRecord{
		Cycle:        c.state.Cycle,
		TotalCycles:  s.Cycles,
		FocusMinutes: s.FocusMinutes,
		StartedAt:    c.phaseStartedAt,
		CompletedAt:  c.clock.Now(),
	}

	if c.rewards != nil {
		ev := c.rewards.Award(float64(s.FocusMinutes))
		c.lastReward = &ev
		rec.XP = ev.Gain.XP
		rec.Coins = ev.Gain.Coins
	}

	if c.recorder != nil {
		if err := c.recorder.RecordFocus(rec); err != nil {
			c.logger.Warn("failed to record focus phase", "error", err)
		}
	}
}

func (c *Controller) phaseDuration() int {
	if c.state.Phase == domain.PhaseBreak {
		return c.state.Settings.BreakSeconds()
	}
	return c.state.Settings.FocusSeconds()
}

func (c *Controller) runningMessage() string {
	if c.state.Phase == domain.PhaseBreak {
		return msgBreak
	}
	return fmt.Sprintf("Focus cycle %d of %d.", c.state.Cycle, c.state.Settings.Cycles)
}

// State returns a snapshot of the session
func (c *Controller) State() State {
	return c.state
}

// Settings returns the clamped settings in effect
func (c *Controller) Settings() domain.Settings {
	return c.state.Settings
}

// Progress returns the phase progress in [0, 1]
func (c *Controller) Progress() float64 {
	return domain.PhaseProgress(c.state.Phase, c.state.Remaining, c.phaseDuration())
}

// Growth returns the growth projection for the configured mode
func (c *Controller) Growth() domain.Growth {
	return domain.NewGrowth(c.growthMode, c.Progress())
}

// RewardTotals returns the accrued totals, zero when rewards are disabled
func (c *Controller) RewardTotals() domain.RewardTotals {
	if c.rewards == nil {
		return domain.RewardTotals{}
	}
	return c.rewards.Totals()
}

// View builds what the presenter is handed on every render
func (c *Controller) View() View {
	phaseLabel := c.state.Phase.Label()
	if c.state.Status == domain.SessionCompleted {
		phaseLabel = phaseLabelDone
	}

	return View{
		RemainingText:  domain.FormatClock(c.state.Remaining),
		StatusText:     c.state.Message,
		PhaseLabel:     phaseLabel,
		CycleLabel:     fmt.Sprintf("Cycle %d of %d", c.state.Cycle, c.state.Settings.Cycles),
		Controls:       domain.ControlsFor(c.state.Status),
		Growth:         c.Growth(),
		Status:         c.state.Status,
		Phase:          c.state.Phase,
		RewardsEnabled: c.rewards != nil,
		Rewards:        c.RewardTotals(),
		LastReward:     c.lastReward,
	}
}

func (c *Controller) render() {
	c.presenter.Render(c.View())
}
