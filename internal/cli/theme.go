package cli

import (
	"context"
	"fmt"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|toggle]",
	Short: "Show or change the color theme",
	Long: `Show the current color theme, or set it.

Without a stored choice the theme follows the terminal background.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		themes := appInstance.Themes

		theme := themes.Load(ctx)
		if len(args) == 0 {
			fmt.Printf("Theme: %s\n", theme)
			return nil
		}

		if args[0] == "toggle" {
			theme = themes.Toggle(ctx)
		} else {
			parsed, ok := domain.ParseTheme(args[0])
			if !ok {
				return fmt.Errorf("unknown theme %q (expected light, dark or toggle)", args[0])
			}
			theme = themes.Apply(ctx, parsed)
		}

		fmt.Printf("✓ Theme set to %s\n", theme)
		return nil
	},
}
