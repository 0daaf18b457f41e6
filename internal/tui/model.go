package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andy/forestfocus/internal/app"
	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current active screen
type Screen int

const (
	ScreenTimer Screen = iota
	ScreenSettings
	ScreenStats
)

// String returns the screen name
func (s Screen) String() string {
	switch s {
	case ScreenTimer:
		return "Timer"
	case ScreenSettings:
		return "Settings"
	case ScreenStats:
		return "Stats"
	default:
		return "Unknown"
	}
}

// Model is the root Bubble Tea model. It owns the focus session: every
// controller call happens inside Update.
type Model struct {
	app           *app.App
	currentScreen Screen
	width         int
	height        int

	ctrl     *session.Controller
	ticker   *teaTicker
	activity *session.ActivityTracker

	timer    *TimerModel
	settings tea.Model // lazy initialized
	stats    tea.Model // lazy initialized

	err         error
	quitMsg     string // shown when quit needs confirming
	quitPending bool
}

// New creates a new root model with a fresh idle session
func New(a *app.App) Model {
	applyTheme(a.Themes.Load(context.Background()))

	timer := NewTimerModel()
	ticker := newTeaTicker(time.Second)
	activity := session.NewActivityTracker(session.SystemClock())

	opts := a.SessionOptions()
	opts.Presenter = timer
	opts.Ticker = ticker
	opts.Activity = activity
	ctrl := session.NewController(opts)
	timer.ctrl = ctrl

	return Model{
		app:           a,
		currentScreen: ScreenTimer,
		ctrl:          ctrl,
		ticker:        ticker,
		activity:      activity,
		timer:         timer,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.timer.Init()
}

// initScreen lazy-initializes a screen on first visit,
// and sends a RefreshDataMsg on subsequent visits so screens reload data.
func (m *Model) initScreen(screen Screen) tea.Cmd {
	switch screen {
	case ScreenSettings:
		if m.settings == nil {
			m.settings = NewSettingsModel(m.ctrl.Settings)
			return m.settings.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	case ScreenStats:
		if m.stats == nil {
			m.stats = NewStatsModel(m.app)
			return m.stats.Init()
		}
		return func() tea.Msg { return RefreshDataMsg{} }
	}
	return nil
}

// InputCapturer is implemented by screens that capture keyboard input (e.g. text forms).
// When active, global keys (, a L q) are suppressed; ctrl+c still quits.
type InputCapturer interface {
	IsCapturingInput() bool
}

// activeScreenCapturingInput returns true if the current screen is capturing text input
func (m *Model) activeScreenCapturingInput() bool {
	var screen tea.Model
	switch m.currentScreen {
	case ScreenTimer:
		screen = m.timer
	case ScreenSettings:
		screen = m.settings
	case ScreenStats:
		screen = m.stats
	}
	if ic, ok := screen.(InputCapturer); ok {
		return ic.IsCapturingInput()
	}
	return false
}

func (m *Model) switchTo(screen Screen) tea.Cmd {
	m.currentScreen = screen
	return m.initScreen(screen)
}

// Update implements tea.Model - tracks activity, drives the session and
// routes everything else to the current screen
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		m.activity.SetForeground(true)
		m.activity.Touch()
		return m, nil

	case tea.BlurMsg:
		m.activity.SetForeground(false)
		m.ctrl.NotifyHidden()
		return m, nil

	case tickMsg:
		if !m.ticker.Current(msg) {
			return m, nil
		}
		m.ctrl.Tick()
		if m.ticker.Current(msg) {
			return m, m.ticker.next()
		}
		return m, m.ticker.Cmd()

	case tea.MouseMsg:
		m.activity.Touch()

	case tea.KeyMsg:
		m.activity.Touch()
		m.quitMsg = ""
		quitPending := m.quitPending
		m.quitPending = false

		// ctrl+c always quits, even from a form
		if msg.Type == tea.KeyCtrlC {
			m.ctrl.Pause(domain.PauseUser)
			return m, tea.Quit
		}

		// Skip global keys when a screen is capturing text input
		if !m.activeScreenCapturingInput() {
			switch {
			case key.Matches(msg, DefaultKeyMap.Quit):
				if m.ctrl.State().Status == domain.SessionRunning && !quitPending {
					m.quitPending = true
					m.quitMsg = "Session is running. Press q again to quit."
					return m, nil
				}
				m.ctrl.Pause(domain.PauseUser)
				return m, tea.Quit

			case key.Matches(msg, DefaultKeyMap.Settings):
				return m, m.switchTo(ScreenSettings)

			case key.Matches(msg, DefaultKeyMap.Stats):
				return m, m.switchTo(ScreenStats)

			case key.Matches(msg, DefaultKeyMap.Theme):
				applyTheme(m.app.Themes.Toggle(context.Background()))
				return m, nil

			case key.Matches(msg, DefaultKeyMap.Back) && m.currentScreen != ScreenTimer:
				m.currentScreen = ScreenTimer
				return m, nil
			}
		}

	case SettingsAppliedMsg:
		m.ctrl.Reconfigure(msg.Settings)
		m.app.Config.Timer.Settings = m.ctrl.Settings()
		if err := m.app.SaveConfig(); err != nil {
			m.app.Logger.Warn("failed to save config", "error", err)
			m.err = fmt.Errorf("settings applied but not saved: %w", err)
		}
		m.currentScreen = ScreenTimer
		return m, m.ticker.Cmd()

	case SwitchScreenMsg:
		return m, m.switchTo(msg.Screen)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	// Route message to current screen
	var cmd tea.Cmd
	switch m.currentScreen {
	case ScreenTimer:
		_, cmd = m.timer.Update(msg)
	case ScreenSettings:
		if m.settings != nil {
			m.settings, cmd = m.settings.Update(msg)
		}
	case ScreenStats:
		if m.stats != nil {
			m.stats, cmd = m.stats.Update(msg)
		}
	}

	// A screen may have started the session
	return m, tea.Batch(cmd, m.ticker.Cmd())
}

// View implements tea.Model - renders header + current screen + footer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Header
	header := headerStyle.Render(fmt.Sprintf("forestfocus - %s", m.currentScreen.String()))

	// Footer with navigation keys
	var footer string
	switch m.currentScreen {
	case ScreenTimer:
		footer = footerStyle.Render("[,] Settings  [A]Stats  [L] Theme  [Q]uit")
	case ScreenSettings:
		footer = footerStyle.Render("[Esc] Back")
	default:
		footer = footerStyle.Render("[Esc] Back  [,] Settings  [L] Theme  [Q]uit")
	}

	// Current screen content
	var content string
	switch m.currentScreen {
	case ScreenTimer:
		content = m.timer.View()
	case ScreenSettings:
		if m.settings != nil {
			content = m.settings.View()
		} else {
			content = "Loading..."
		}
	case ScreenStats:
		if m.stats != nil {
			content = m.stats.View()
		} else {
			content = "Loading..."
		}
	}

	// Error/warning display
	errorDisplay := ""
	if m.quitMsg != "" {
		errorDisplay = lipgloss.NewStyle().
			Foreground(warningColor).
			Render(fmt.Sprintf("\n%s", m.quitMsg))
	} else if m.err != nil {
		errorDisplay = lipgloss.NewStyle().
			Foreground(errorColor).
			Render(fmt.Sprintf("\nError: %s", m.err.Error()))
	}

	// Divider line between header and content
	innerWidth := m.width - 6 // account for border (2) + padding (4)
	if innerWidth < 20 {
		innerWidth = 20
	}
	dividerWidth := innerWidth - 12
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().Foreground(borderColor).Render(
		strings.Repeat("─", dividerWidth),
	)

	body := fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s\n%s", header, divider, content, errorDisplay, divider, footer)

	// Wrap in border, sized to terminal
	frame := appBorderStyle.
		Width(innerWidth).
		Height(m.height - 4) // leave room for border top/bottom
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame.Render(body))
}

// Run starts the TUI. Focus reporting lets the session pause when the
// terminal loses focus; mouse motion counts as activity.
func Run(a *app.App) error {
	p := tea.NewProgram(New(a),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
