package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/andy/forestfocus/internal/service"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset stored data",
	Long: `Reset stored data.

Examples:
  forestfocus reset rewards   # Zero XP and coins
  forestfocus reset history   # Delete the focus log
  forestfocus reset all       # Both, plus the saved theme`,
}

var resetRewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Zero accumulated XP and coins",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will reset your XP and coins to zero. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := resetRewards(context.Background()); err != nil {
			return err
		}

		fmt.Println("Rewards have been reset.")
		return nil
	},
}

var resetHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Delete every completed focus phase",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete your entire focus history. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.FocusRepo.DeleteAll(context.Background()); err != nil {
			return fmt.Errorf("failed to clear focus history: %w", err)
		}

		fmt.Println("Focus history has been deleted.")
		return nil
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete ALL data: rewards, history and theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL data (rewards, history, theme). Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		ctx := context.Background()
		if err := resetRewards(ctx); err != nil {
			return err
		}
		if err := appInstance.FocusRepo.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to clear focus history: %w", err)
		}
		if err := appInstance.SettingsRepo.Delete(ctx, service.KeyTheme); err != nil {
			return fmt.Errorf("failed to clear theme: %w", err)
		}

		fmt.Println("All data has been deleted.")
		return nil
	},
}

// resetRewards zeroes the ledger, or the stored keys directly when rewards
// are switched off in the config
func resetRewards(ctx context.Context) error {
	if appInstance.Rewards != nil {
		if err := appInstance.Rewards.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset rewards: %w", err)
		}
		return nil
	}
	for _, key := range []string{service.KeyXP, service.KeyCoins} {
		if err := appInstance.SettingsRepo.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to reset rewards: %w", err)
		}
	}
	return nil
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.AddCommand(resetRewardsCmd)
	resetCmd.AddCommand(resetHistoryCmd)
	resetCmd.AddCommand(resetAllCmd)
}
