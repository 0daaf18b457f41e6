package tui

import (
	"github.com/andy/forestfocus/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// palette holds the colors that change with the theme
type palette struct {
	primary lipgloss.Color
	accent  lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	error   lipgloss.Color
	border  lipgloss.Color
	footer  lipgloss.Color
	help    lipgloss.Color
	leaf    string // progress gradient start
	trunk   string // progress gradient end
}

var darkPalette = palette{
	primary: lipgloss.Color("114"), // Sage
	accent:  lipgloss.Color("221"), // Gold
	muted:   lipgloss.Color("241"),
	success: lipgloss.Color("76"),
	warning: lipgloss.Color("214"),
	error:   lipgloss.Color("196"),
	border:  lipgloss.Color("65"),
	footer:  lipgloss.Color("150"),
	help:    lipgloss.Color("117"),
	leaf:    "#9BE564",
	trunk:   "#2E7D32",
}

var lightPalette = palette{
	primary: lipgloss.Color("28"),
	accent:  lipgloss.Color("130"),
	muted:   lipgloss.Color("245"),
	success: lipgloss.Color("34"),
	warning: lipgloss.Color("166"),
	error:   lipgloss.Color("160"),
	border:  lipgloss.Color("107"),
	footer:  lipgloss.Color("22"),
	help:    lipgloss.Color("25"),
	leaf:    "#7CB342",
	trunk:   "#1B5E20",
}

var (
	// Colors
	primaryColor lipgloss.Color
	accentColor  lipgloss.Color
	mutedColor   lipgloss.Color
	successColor lipgloss.Color
	warningColor lipgloss.Color
	errorColor   lipgloss.Color
	borderColor  lipgloss.Color

	// Base styles
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	helpStyle     lipgloss.Style

	// Layout
	appBorderStyle lipgloss.Style

	// Header/Footer
	headerStyle lipgloss.Style
	footerStyle lipgloss.Style

	// Timer specific
	clockStyle        lipgloss.Style
	timerRunningStyle lipgloss.Style
	timerPausedStyle  lipgloss.Style
	timerDoneStyle    lipgloss.Style
	rewardStyle       lipgloss.Style

	currentPalette palette
)

func init() {
	applyTheme(domain.ThemeDark)
}

// applyTheme rebuilds every style from the palette for theme
func applyTheme(theme domain.Theme) {
	p := darkPalette
	if theme == domain.ThemeLight {
		p = lightPalette
	}
	currentPalette = p

	primaryColor = p.primary
	accentColor = p.accent
	mutedColor = p.muted
	successColor = p.success
	warningColor = p.warning
	errorColor = p.error
	borderColor = p.border

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle = lipgloss.NewStyle().Foreground(p.help)

	appBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(p.footer).Bold(true)

	clockStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1)
	timerRunningStyle = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	timerPausedStyle = lipgloss.NewStyle().Bold(true).Foreground(warningColor)
	timerDoneStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	rewardStyle = lipgloss.NewStyle().Foreground(accentColor)
}
