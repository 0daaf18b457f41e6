package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/andy/forestfocus/internal/service"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus time and rewards for today and this week",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		summary, err := appInstance.Stats.Summary(ctx, time.Now())
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}

		printPeriod("Today", summary.Today)
		printPeriod("This week", summary.Week)

		if appInstance.Rewards != nil {
			fmt.Println()
			fmt.Printf("Total rewards: %d XP, %d coins\n", summary.Rewards.XP, summary.Rewards.Coins)
		}
		return nil
	},
}

var statsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed focus phases",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		end := startOfDay(time.Now()).AddDate(0, 0, 1)
		start := end.AddDate(0, 0, -7)

		if cmd.Flags().Changed("start") {
			startStr, _ := cmd.Flags().GetString("start")
			t, err := parseDate(startStr)
			if err != nil {
				return fmt.Errorf("invalid start date: %w", err)
			}
			start = t
		}
		if cmd.Flags().Changed("end") {
			endStr, _ := cmd.Flags().GetString("end")
			t, err := parseDate(endStr)
			if err != nil {
				return fmt.Errorf("invalid end date: %w", err)
			}
			// inclusive of the whole end day
			end = t.AddDate(0, 0, 1)
		}

		records, err := appInstance.FocusRepo.List(ctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to list focus history: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No focus phases found")
			return nil
		}

		fmt.Printf("%-5s %-17s %-8s %-8s %-6s %-6s\n", "ID", "Completed", "Cycle", "Length", "XP", "Coins")
		fmt.Println("---------------------------------------------------------")

		var totalMinutes, totalXP, totalCoins int
		for _, r := range records {
			fmt.Printf("%-5d %-17s %-8s %-8s %-6d %-6d\n",
				r.ID,
				r.CompletedAt.Local().Format("2006-01-02 15:04"),
				fmt.Sprintf("%d/%d", r.Cycle, r.TotalCycles),
				fmt.Sprintf("%dm", r.FocusMinutes),
				r.XP,
				r.Coins,
			)
			totalMinutes += r.FocusMinutes
			totalXP += r.XP
			totalCoins += r.Coins
		}

		fmt.Println("---------------------------------------------------------")
		fmt.Printf("Total: %d phases, %s, %d XP, %d coins\n",
			len(records), formatDuration(time.Duration(totalMinutes)*time.Minute), totalXP, totalCoins)
		return nil
	},
}

func printPeriod(label string, p service.PeriodStats) {
	fmt.Printf("%s:\n", label)
	fmt.Printf("  Focus phases: %d\n", p.Sessions)
	fmt.Printf("  Focus time:   %s (%.1fh)\n", formatDuration(time.Duration(p.FocusMinutes)*time.Minute), p.Hours())
	fmt.Printf("  Earned:       %d XP, %d coins\n", p.XP, p.Coins)
}

// parseDate parses a date string (YYYY-MM-DD or relative like "today") in local time
func parseDate(s string) (time.Time, error) {
	switch s {
	case "today":
		return startOfDay(time.Now()), nil
	case "yesterday":
		return startOfDay(time.Now()).AddDate(0, 0, -1), nil
	default:
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("expected format: YYYY-MM-DD, 'today', or 'yesterday'")
		}
		return t, nil
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func init() {
	statsHistoryCmd.Flags().String("start", "", "Start date (YYYY-MM-DD, today, yesterday); default 7 days ago")
	statsHistoryCmd.Flags().String("end", "", "End date, inclusive (YYYY-MM-DD, today, yesterday)")
	statsCmd.AddCommand(statsHistoryCmd)
}
