package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/session"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a focus session in this terminal without the TUI",
	Long: `Run a focus session and print one line per second.

Values not given on the command line come from the config file. Input that is
out of range is clamped; input that is not a number falls back to the default.
Ctrl+C pauses the session and exits.

Examples:
  forestfocus run
  forestfocus run --focus 50 --break 10 --cycles 2
  forestfocus run --break 0 --staged`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := appInstance.SessionOptions()
		opts.Settings = settingsFromFlags(cmd, opts.Settings)
		if staged, _ := cmd.Flags().GetBool("staged"); staged {
			opts.GrowthMode = domain.GrowthStaged
		}
		// No keystrokes reach a headless session, so idle time means nothing here
		opts.IdleLimit = 0

		ticker := session.NewIntervalTicker(time.Second)
		opts.Ticker = ticker
		opts.Presenter = newLinePresenter(cmd.OutOrStdout())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctrl := session.NewController(opts)
		runSession(ctx, ctrl, ticker)

		if ctrl.State().Status != domain.SessionCompleted {
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped with %s left in %s.\n",
				domain.FormatClock(ctrl.State().Remaining), ctrl.State().Phase.Label())
		}
		return nil
	},
}

// tickSource is a session.Ticker whose ticks the caller receives itself
type tickSource interface {
	session.Ticker
	C() <-chan time.Time
}

// runSession starts ctrl and drives it from this goroutine until the session
// stops running or ctx is cancelled. Cancellation pauses the session.
func runSession(ctx context.Context, ctrl *session.Controller, ticks tickSource) {
	ctrl.Start()
	for ctrl.State().Status == domain.SessionRunning {
		select {
		case <-ticks.C():
			ctrl.Tick()
		case <-ctx.Done():
			ctrl.Pause(domain.PauseUser)
			return
		}
	}
}

// settingsFromFlags overlays any flags the user set on base
func settingsFromFlags(cmd *cobra.Command, base domain.Settings) domain.Settings {
	s := base.Clamp()
	if cmd.Flags().Changed("focus") {
		v, _ := cmd.Flags().GetString("focus")
		s.FocusMinutes = domain.ParseMinutes(v, domain.DefaultFocusMinutes, domain.MinFocusMinutes, domain.MaxFocusMinutes)
	}
	if cmd.Flags().Changed("break") {
		v, _ := cmd.Flags().GetString("break")
		s.BreakMinutes = domain.ParseMinutes(v, domain.DefaultBreakMinutes, domain.MinBreakMinutes, domain.MaxBreakMinutes)
	}
	if cmd.Flags().Changed("cycles") {
		v, _ := cmd.Flags().GetString("cycles")
		s.Cycles = domain.ParseMinutes(v, domain.DefaultCycles, domain.MinCycles, domain.MaxCycles)
	}
	return s
}

// linePresenter prints one status line per render
type linePresenter struct {
	w          io.Writer
	lastReward *domain.RewardEvent
}

func newLinePresenter(w io.Writer) *linePresenter {
	return &linePresenter{w: w}
}

func (p *linePresenter) Render(v session.View) {
	fmt.Fprintf(p.w, "%s  %-5s  %-13s  %s  %s\n",
		v.RemainingText, v.PhaseLabel, v.CycleLabel, growthText(v.Growth), v.StatusText)

	if v.LastReward != nil && v.LastReward != p.lastReward {
		p.lastReward = v.LastReward
		fmt.Fprintf(p.w, "  +%d XP, +%d coins (total %d XP, %d coins)\n",
			v.LastReward.Gain.XP, v.LastReward.Gain.Coins,
			v.LastReward.Totals.XP, v.LastReward.Totals.Coins)
	}
}

func growthText(g domain.Growth) string {
	if g.Mode == domain.GrowthStaged {
		return fmt.Sprintf("%-8s", g.Stage)
	}
	return "x" + g.ScaleText()
}

func init() {
	runCmd.Flags().String("focus", "", "Focus minutes (1-180)")
	runCmd.Flags().String("break", "", "Break minutes (0-60, 0 skips breaks)")
	runCmd.Flags().String("cycles", "", "Number of focus cycles (1-20)")
	runCmd.Flags().Bool("staged", false, "Show growth as seedling/sapling/tree instead of a scale")
}
