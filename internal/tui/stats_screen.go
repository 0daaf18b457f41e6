package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/forestfocus/internal/app"
	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const recentLimit = 5

// StatsModel displays focus time and rewards for today and this week
type StatsModel struct {
	app *app.App

	summary *service.Summary
	recent  []*domain.FocusRecord

	loading bool
	err     error
}

type statsDataMsg struct {
	summary *service.Summary
	recent  []*domain.FocusRecord
	err     error
}

// NewStatsModel creates a new stats screen model
func NewStatsModel(a *app.App) tea.Model {
	return &StatsModel{app: a, loading: true}
}

func (m *StatsModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *StatsModel) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		summary, err := m.app.Stats.Summary(ctx, now)
		if err != nil {
			return statsDataMsg{err: err}
		}

		records, err := m.app.FocusRepo.List(ctx, summary.Week.Start, now.Add(time.Second))
		if err != nil {
			return statsDataMsg{err: err}
		}
		// newest first
		recent := make([]*domain.FocusRecord, 0, recentLimit)
		for i := len(records) - 1; i >= 0 && len(recent) < recentLimit; i-- {
			recent = append(recent, records[i])
		}

		return statsDataMsg{summary: summary, recent: recent}
	}
}

func (m *StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshDataMsg:
		m.loading = true
		return m, m.loadData()

	case statsDataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.summary = msg.summary
			m.recent = msg.recent
		}
		return m, nil
	}

	return m, nil
}

func (m *StatsModel) View() string {
	var s string
	s += titleStyle.Render("Focus Stats") + "\n\n"

	if m.err != nil {
		return s + lipgloss.NewStyle().Foreground(errorColor).
			Render(fmt.Sprintf("Error: %s", m.err.Error()))
	}
	if m.loading && m.summary == nil {
		return s + "Loading..."
	}

	labelStyle := lipgloss.NewStyle().Bold(true).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(primaryColor)

	period := func(label string, p service.PeriodStats) string {
		return fmt.Sprintf("  %s %s   %s   %s\n",
			labelStyle.Render(label),
			valueStyle.Render(formatHours(p.Hours())),
			subtitleStyle.Render(plural(p.Sessions, "phase")),
			rewardStyle.Render(fmt.Sprintf("+%d XP", p.XP)),
		)
	}
	s += period("Today", m.summary.Today)
	s += period("This week", m.summary.Week)

	if m.app.Rewards != nil {
		s += "\n" + fmt.Sprintf("  %s %s, %s\n",
			labelStyle.Render("Totals"),
			rewardStyle.Render(fmt.Sprintf("%d XP", m.summary.Rewards.XP)),
			rewardStyle.Render(plural(m.summary.Rewards.Coins, "coin")))
	}

	s += "\n" + subtitleStyle.Render("  Recent") + "\n"
	if len(m.recent) == 0 {
		s += "  No completed focus phases this week.\n"
	}
	for _, r := range m.recent {
		s += fmt.Sprintf("  %s  cycle %d/%d  %dm\n",
			r.CompletedAt.Local().Format("Mon 15:04"), r.Cycle, r.TotalCycles, r.FocusMinutes)
	}

	return s
}
