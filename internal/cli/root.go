package cli

import (
	"github.com/andy/forestfocus/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "forestfocus",
	Short: "A focus timer that grows a tree while you work",
	Long: `Forestfocus runs focus/break cycles, pauses itself when you step away,
and rewards completed focus time with XP and coins.

By default, running forestfocus without arguments launches the interactive TUI.
Use subcommands for headless sessions, stats and maintenance.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: launch TUI
		launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(resetCmd)
}
