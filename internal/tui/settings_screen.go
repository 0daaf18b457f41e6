package tui

import (
	"fmt"
	"strconv"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// settings form field indices
const (
	settingsFieldFocus = iota
	settingsFieldBreak
	settingsFieldCycles
	settingsFieldCount
)

var settingsLabels = [settingsFieldCount]string{
	fmt.Sprintf("Focus minutes (%d-%d):", domain.MinFocusMinutes, domain.MaxFocusMinutes),
	fmt.Sprintf("Break minutes (%d-%d, 0 = no break):", domain.MinBreakMinutes, domain.MaxBreakMinutes),
	fmt.Sprintf("Cycles (%d-%d):", domain.MinCycles, domain.MaxCycles),
}

// SettingsModel is the session settings form. Saving hands the parsed,
// clamped settings to the session owner; it never rejects input.
type SettingsModel struct {
	current    func() domain.Settings
	fields     []textinput.Model
	fieldFocus int
}

// NewSettingsModel creates a settings form prefilled from current
func NewSettingsModel(current func() domain.Settings) tea.Model {
	m := &SettingsModel{current: current}
	m.initForm()
	return m
}

// IsCapturingInput is always true: the screen is a form
func (m *SettingsModel) IsCapturingInput() bool {
	return true
}

func (m *SettingsModel) Init() tea.Cmd {
	return m.fields[m.fieldFocus].Focus()
}

func (m *SettingsModel) initForm() {
	s := m.current()
	values := [settingsFieldCount]int{s.FocusMinutes, s.BreakMinutes, s.Cycles}
	placeholders := [settingsFieldCount]int{domain.DefaultFocusMinutes, domain.DefaultBreakMinutes, domain.DefaultCycles}

	m.fields = make([]textinput.Model, settingsFieldCount)
	for i := range m.fields {
		f := textinput.New()
		f.Placeholder = strconv.Itoa(placeholders[i])
		f.CharLimit = 6
		f.Width = 10
		f.SetValue(strconv.Itoa(values[i]))
		m.fields[i] = f
	}

	m.fieldFocus = settingsFieldFocus
	m.fields[settingsFieldFocus].Focus()
}

// parsed reads the form the same way for every field: leading integer,
// clamped, default when unreadable
func (m *SettingsModel) parsed() domain.Settings {
	return domain.ParseSettings(domain.RawSettings{
		FocusMinutes: m.fields[settingsFieldFocus].Value(),
		BreakMinutes: m.fields[settingsFieldBreak].Value(),
		Cycles:       m.fields[settingsFieldCycles].Value(),
	})
}

func (m *SettingsModel) save() tea.Cmd {
	s := m.parsed()
	return func() tea.Msg {
		return SettingsAppliedMsg{Settings: s}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.initForm()
		return m, m.fields[m.fieldFocus].Focus()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, DefaultKeyMap.Back):
			return m, func() tea.Msg { return SwitchScreenMsg{Screen: ScreenTimer} }

		case key.Matches(msg, DefaultKeyMap.Next):
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus + 1) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Prev):
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus = (m.fieldFocus - 1 + settingsFieldCount) % settingsFieldCount
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Select):
			if m.fieldFocus == settingsFieldCount-1 {
				return m, m.save()
			}
			m.fields[m.fieldFocus].Blur()
			m.fieldFocus++
			return m, m.fields[m.fieldFocus].Focus()

		case key.Matches(msg, DefaultKeyMap.Save):
			return m, m.save()
		}
	}

	// Update the focused text input
	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m *SettingsModel) View() string {
	var s string
	s += titleStyle.Render("Session Settings") + "\n\n"

	for i, label := range settingsLabels {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == m.fieldFocus {
			indicator = "> "
			labelStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(label), m.fields[i].View())
	}

	preview := m.parsed()
	s += subtitleStyle.Render(fmt.Sprintf("  Will use %d/%d minutes, %d cycles. A running session restarts.",
		preview.FocusMinutes, preview.BreakMinutes, preview.Cycles)) + "\n\n"

	s += helpStyle.Render("  tab/shift+tab: navigate fields  ctrl+s: save  enter: next/save  esc: cancel")

	return s
}
