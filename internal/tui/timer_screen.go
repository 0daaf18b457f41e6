package tui

import (
	"fmt"
	"strings"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const growthBarWidth = 40

var stageGlyphs = map[domain.GrowthStage]string{
	domain.StageSeedling: "🌱",
	domain.StageSapling:  "🌿",
	domain.StageTree:     "🌳",
}

// TimerModel is the session screen. It is the controller's presenter: the
// controller hands it a fresh View after every transition and tick.
type TimerModel struct {
	ctrl *session.Controller

	view       session.View
	lastReward *domain.RewardEvent
	flash      string // last reward, shown until the session is reset
}

// NewTimerModel creates a timer screen. The owner wires ctrl once the
// controller exists.
func NewTimerModel() *TimerModel {
	return &TimerModel{}
}

// Render implements session.Presenter
func (m *TimerModel) Render(v session.View) {
	m.view = v

	if v.Status == domain.SessionIdle {
		m.flash = ""
	}
	if v.LastReward != nil && v.LastReward != m.lastReward {
		m.lastReward = v.LastReward
		m.flash = fmt.Sprintf("+%d XP  +%s", v.LastReward.Gain.XP, plural(v.LastReward.Gain.Coins, "coin"))
	}
}

func (m *TimerModel) Init() tea.Cmd {
	return nil
}

// Update handles the session keys. Keys for controls that are not offered in
// the current status are ignored.
func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.ctrl == nil {
		return m, nil
	}

	controls := m.view.Controls
	switch {
	case key.Matches(keyMsg, DefaultKeyMap.Start):
		if controls.Start {
			m.ctrl.Start()
		}
	case key.Matches(keyMsg, DefaultKeyMap.Pause):
		if controls.Pause {
			m.ctrl.Pause(domain.PauseUser)
		}
	case key.Matches(keyMsg, DefaultKeyMap.Toggle):
		if controls.Pause {
			m.ctrl.Pause(domain.PauseUser)
		} else if controls.Start {
			m.ctrl.Start()
		}
	case key.Matches(keyMsg, DefaultKeyMap.Reset):
		if controls.Reset {
			m.ctrl.Reset(m.ctrl.Settings())
		}
	}
	return m, nil
}

// View renders the timer screen
func (m *TimerModel) View() string {
	v := m.view
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.PhaseLabel))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render(v.CycleLabel))
	b.WriteString("\n\n")

	b.WriteString(clockStyle.Render(v.RemainingText))
	b.WriteString("\n\n")

	b.WriteString(m.growthView())
	b.WriteString("\n\n")

	b.WriteString(statusStyle(v.Status).Render(v.StatusText))
	b.WriteString("\n")

	if v.RewardsEnabled {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("XP: %s   Coins: %s",
			rewardStyle.Render(fmt.Sprint(v.Rewards.XP)),
			rewardStyle.Render(fmt.Sprint(v.Rewards.Coins))))
		if m.flash != "" {
			b.WriteString("   ")
			b.WriteString(lipgloss.NewStyle().Foreground(successColor).Render(m.flash))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(controlsHelp(v.Controls)))
	return b.String()
}

func (m *TimerModel) growthView() string {
	g := m.view.Growth
	if g.Mode == domain.GrowthStaged {
		return fmt.Sprintf("%s  %s", stageGlyphs[g.Stage], subtitleStyle.Render(g.Stage.String()))
	}

	bar := progress.New(
		progress.WithScaledGradient(currentPalette.leaf, currentPalette.trunk),
		progress.WithWidth(growthBarWidth),
		progress.WithoutPercentage(),
	)
	return fmt.Sprintf("%s  %s", bar.ViewAs(g.Progress), subtitleStyle.Render("x"+g.ScaleText()))
}

func statusStyle(status domain.SessionStatus) lipgloss.Style {
	switch status {
	case domain.SessionRunning:
		return timerRunningStyle
	case domain.SessionPaused:
		return timerPausedStyle
	case domain.SessionCompleted:
		return timerDoneStyle
	default:
		return subtitleStyle
	}
}

// controlsHelp lists only the keys that do something right now
func controlsHelp(c domain.Controls) string {
	var parts []string
	if c.Start {
		parts = append(parts, "s=start")
	}
	if c.Pause {
		parts = append(parts, "p=pause")
	}
	if c.Reset {
		parts = append(parts, "x=reset")
	}
	return "Keys: " + strings.Join(parts, ", ")
}
