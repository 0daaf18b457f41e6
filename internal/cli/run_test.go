package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/repository"
	"github.com/andy/forestfocus/internal/service"
	"github.com/andy/forestfocus/internal/session"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instantTicker fires on every receive while armed
type instantTicker struct {
	fired chan time.Time
	armed bool
}

func newInstantTicker() *instantTicker {
	ch := make(chan time.Time)
	close(ch)
	return &instantTicker{fired: ch}
}

func (t *instantTicker) Arm()    { t.armed = true }
func (t *instantTicker) Disarm() { t.armed = false }

func (t *instantTicker) C() <-chan time.Time {
	if !t.armed {
		return nil
	}
	return t.fired
}

func TestRunSessionCompletes(t *testing.T) {
	var out bytes.Buffer
	ticker := newInstantTicker()
	ledger := service.NewRewardLedger(context.Background(), repository.NewMemoryStore(), nil)

	ctrl := session.NewController(session.Options{
		Settings:  domain.Settings{FocusMinutes: 1, BreakMinutes: 0, Cycles: 2},
		Ticker:    ticker,
		Presenter: newLinePresenter(&out),
		Rewards:   ledger,
	})

	runSession(context.Background(), ctrl, ticker)

	assert.Equal(t, domain.SessionCompleted, ctrl.State().Status)
	assert.False(t, ticker.armed)
	assert.Equal(t, domain.RewardTotals{XP: 20, Coins: 2}, ledger.Totals())

	text := out.String()
	assert.Contains(t, text, "Focus cycle 2 of 2.")
	assert.Contains(t, text, "Session complete! 🎉")
	assert.Contains(t, text, "+10 XP, +1 coins (total 20 XP, 2 coins)")
	assert.Equal(t, 2, strings.Count(text, "+10 XP"))
}

func TestRunSessionCancelPauses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// never fires, so only the cancelled context can end the loop
	ticker := session.NewIntervalTicker(time.Hour)
	ctrl := session.NewController(session.Options{
		Settings: domain.DefaultSettings(),
		Ticker:   ticker,
	})

	runSession(ctx, ctrl, ticker)

	assert.Equal(t, domain.SessionPaused, ctrl.State().Status)
	assert.Equal(t, domain.PauseUser, ctrl.State().PauseReason)
	assert.False(t, ticker.Armed())
	assert.Equal(t, 25*60, ctrl.State().Remaining)
}

func TestSettingsFromFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "run"}
		cmd.Flags().String("focus", "", "")
		cmd.Flags().String("break", "", "")
		cmd.Flags().String("cycles", "", "")
		return cmd
	}
	base := domain.Settings{FocusMinutes: 50, BreakMinutes: 10, Cycles: 3}

	t.Run("no flags keeps base", func(t *testing.T) {
		assert.Equal(t, base, settingsFromFlags(newCmd(), base))
	})

	t.Run("flags override and clamp", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("focus", "500"))
		require.NoError(t, cmd.Flags().Set("cycles", "0"))

		got := settingsFromFlags(cmd, base)
		assert.Equal(t, domain.Settings{FocusMinutes: 180, BreakMinutes: 10, Cycles: 1}, got)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.Flags().Set("focus", "abc"))
		require.NoError(t, cmd.Flags().Set("break", "soon"))

		got := settingsFromFlags(cmd, base)
		assert.Equal(t, domain.Settings{FocusMinutes: 25, BreakMinutes: 5, Cycles: 3}, got)
	})
}

func TestLinePresenterStagedGrowth(t *testing.T) {
	var out bytes.Buffer
	p := newLinePresenter(&out)

	p.Render(session.View{
		RemainingText: "10:00",
		PhaseLabel:    "Focus",
		CycleLabel:    "Cycle 1 of 4",
		StatusText:    "Focus cycle 1 of 4.",
		Growth:        domain.NewGrowth(domain.GrowthStaged, 0.5),
	})

	assert.Contains(t, out.String(), "sapling")
	assert.Contains(t, out.String(), "10:00")
	assert.NotContains(t, out.String(), "XP")
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2026-03-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.Local), d)

	today, err := parseDate("today")
	require.NoError(t, err)
	assert.Equal(t, startOfDay(time.Now()), today)

	_, err = parseDate("04/03/2026")
	assert.Error(t, err)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "25m", formatDuration(25*time.Minute))
	assert.Equal(t, "2h 5m", formatDuration(125*time.Minute))
}
