package tui

import "github.com/andy/forestfocus/internal/domain"

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// RefreshDataMsg requests data refresh
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// SettingsAppliedMsg carries parsed settings from the settings form to the
// session owner
type SettingsAppliedMsg struct {
	Settings domain.Settings
}

// tickMsg is one second of countdown, stamped with the ticker generation
// that scheduled it
type tickMsg struct {
	gen int
}
