package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/andy/forestfocus/internal/app"
	"github.com/andy/forestfocus/internal/config"
	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "forestfocus.db")
	cfg.Log.Path = ""

	a, err := app.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	return New(a)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
}

func TestTeaTickerGenerations(t *testing.T) {
	tk := newTeaTicker(0)
	assert.Nil(t, tk.Cmd(), "disarmed ticker schedules nothing")

	tk.Arm()
	first := tickMsg{gen: tk.gen}
	assert.NotNil(t, tk.Cmd())
	assert.Nil(t, tk.Cmd(), "first tick is scheduled once")
	assert.True(t, tk.Current(first))

	tk.Arm()
	assert.True(t, tk.Current(first), "arming twice keeps the generation")

	tk.Disarm()
	assert.False(t, tk.Current(first))

	tk.Arm()
	assert.False(t, tk.Current(first), "a tick from an earlier arming is stale")
	assert.True(t, tk.Current(tickMsg{gen: tk.gen}))
}

func TestStartAndTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(t, m, "s")
	assert.NotNil(t, cmd)
	assert.Equal(t, domain.SessionRunning, m.ctrl.State().Status)
	assert.True(t, m.ticker.armed)

	m, cmd = update(t, m, tickMsg{gen: m.ticker.gen})
	assert.NotNil(t, cmd, "a live tick schedules the next one")
	assert.Equal(t, 25*60-1, m.ctrl.State().Remaining)
	assert.Equal(t, "24:59", m.timer.view.RemainingText)
}

func TestStaleTickDropped(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "s")
	stale := tickMsg{gen: m.ticker.gen}

	m, _ = press(t, m, "p")
	assert.Equal(t, domain.SessionPaused, m.ctrl.State().Status)

	m, _ = press(t, m, "s")
	before := m.ctrl.State().Remaining

	m, cmd := update(t, m, stale)
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.ctrl.State().Remaining)
}

func TestBlurPausesImmediately(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "s")

	m, _ = update(t, m, tea.BlurMsg{})
	st := m.ctrl.State()
	assert.Equal(t, domain.SessionPaused, st.Status)
	assert.Equal(t, domain.PauseAuto, st.PauseReason)
	assert.Equal(t, "Paused (tab not active).", m.timer.view.StatusText)
	assert.False(t, m.ticker.armed)

	m, _ = update(t, m, tea.FocusMsg{})
	assert.True(t, m.activity.IsForeground())
	assert.Equal(t, domain.SessionPaused, m.ctrl.State().Status, "regaining focus does not resume")
}

func TestSpaceToggles(t *testing.T) {
	m := newTestModel(t)
	space := tea.KeyMsg{Type: tea.KeySpace}

	m, _ = update(t, m, space)
	assert.Equal(t, domain.SessionRunning, m.ctrl.State().Status)

	m, _ = update(t, m, space)
	assert.Equal(t, domain.SessionPaused, m.ctrl.State().Status)
	assert.Equal(t, domain.PauseUser, m.ctrl.State().PauseReason)
}

func TestResetKeyIgnoredWhenIdle(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.timer.view.Controls.Reset)

	m, _ = press(t, m, "x")
	assert.Equal(t, domain.SessionIdle, m.ctrl.State().Status)
	assert.Equal(t, "Ready to focus.", m.timer.view.StatusText)
}

func TestSettingsAppliedRestartsRunningSession(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "s")
	oldGen := m.ticker.gen

	m, cmd := update(t, m, SettingsAppliedMsg{Settings: domain.Settings{FocusMinutes: 50, BreakMinutes: 10, Cycles: 2}})
	assert.NotNil(t, cmd, "restarted session needs a fresh tick")
	assert.Equal(t, ScreenTimer, m.currentScreen)

	st := m.ctrl.State()
	assert.Equal(t, domain.SessionRunning, st.Status)
	assert.Equal(t, 50*60, st.Remaining)
	assert.Equal(t, 1, st.Cycle)
	assert.Equal(t, "Focus cycle 1 of 2.", st.Message)
	assert.False(t, m.ticker.Current(tickMsg{gen: oldGen}))
	assert.Equal(t, st.Settings, m.app.Config.Timer.Settings)
}

func TestSettingsFormParsesInput(t *testing.T) {
	current := domain.DefaultSettings()
	form := NewSettingsModel(func() domain.Settings { return current }).(*SettingsModel)

	form.fields[settingsFieldFocus].SetValue("500")
	form.fields[settingsFieldBreak].SetValue("abc")
	form.fields[settingsFieldCycles].SetValue("3.7")

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SettingsAppliedMsg)
	require.True(t, ok)
	assert.Equal(t, domain.Settings{FocusMinutes: 180, BreakMinutes: 5, Cycles: 3}, msg.Settings)
}

func TestSettingsFormEscGoesBack(t *testing.T) {
	form := NewSettingsModel(domain.DefaultSettings)
	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchScreenMsg{Screen: ScreenTimer}, cmd())
}

func TestQuitWhileRunningNeedsConfirmation(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "s")

	m, cmd := press(t, m, "q")
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.quitMsg)

	m, cmd = press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, domain.SessionPaused, m.ctrl.State().Status)
}

func TestCtrlCQuitsFromSettingsForm(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "s")
	m, _ = press(t, m, ",")
	require.Equal(t, ScreenSettings, m.currentScreen)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, domain.SessionPaused, m.ctrl.State().Status)
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	before := m.app.Themes.Current()

	_, _ = press(t, m, "L")
	assert.Equal(t, before.Toggle(), m.app.Themes.Current())
	if before.Toggle() == domain.ThemeLight {
		assert.Equal(t, lightPalette, currentPalette)
	} else {
		assert.Equal(t, darkPalette, currentPalette)
	}
}

func TestTimerRenderFlashesReward(t *testing.T) {
	tm := NewTimerModel()
	ev := &domain.RewardEvent{Gain: domain.RewardGain{XP: 250, Coins: 5}}

	tm.Render(session.View{Status: domain.SessionRunning, RewardsEnabled: true, LastReward: ev})
	assert.Equal(t, "+250 XP  +5 coins", tm.flash)

	tm.Render(session.View{Status: domain.SessionIdle, RewardsEnabled: true, LastReward: ev})
	assert.Empty(t, tm.flash, "reset clears the flash")
}

func TestControlsHelp(t *testing.T) {
	assert.Equal(t, "Keys: s=start", controlsHelp(domain.ControlsFor(domain.SessionIdle)))
	assert.Equal(t, "Keys: p=pause, x=reset", controlsHelp(domain.ControlsFor(domain.SessionRunning)))
	assert.Equal(t, "Keys: s=start, x=reset", controlsHelp(domain.ControlsFor(domain.SessionPaused)))
}
