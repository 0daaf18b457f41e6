package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
	DefaultCycles       = 4

	MinFocusMinutes = 1
	MaxFocusMinutes = 180
	MinBreakMinutes = 0
	MaxBreakMinutes = 60
	MinCycles       = 1
	MaxCycles       = 20
)

// Settings is the session configuration. Use Clamp before handing values to a
// running session.
type Settings struct {
	FocusMinutes int `yaml:"focus_minutes"`
	BreakMinutes int `yaml:"break_minutes"`
	Cycles       int `yaml:"cycles"`
}

// DefaultSettings returns 25/5 with four cycles
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
		Cycles:       DefaultCycles,
	}
}

// Clamp returns a copy with every field forced into its valid range
func (s Settings) Clamp() Settings {
	return Settings{
		FocusMinutes: clampInt(s.FocusMinutes, MinFocusMinutes, MaxFocusMinutes),
		BreakMinutes: clampInt(s.BreakMinutes, MinBreakMinutes, MaxBreakMinutes),
		Cycles:       clampInt(s.Cycles, MinCycles, MaxCycles),
	}
}

// FocusSeconds returns the focus phase length in seconds
func (s Settings) FocusSeconds() int {
	return s.FocusMinutes * 60
}

// BreakSeconds returns the break phase length in seconds (0 disables breaks)
func (s Settings) BreakSeconds() int {
	return s.BreakMinutes * 60
}

// HasBreak reports whether a break phase follows each focus phase
func (s Settings) HasBreak() bool {
	return s.BreakSeconds() > 0
}

// RawSettings holds unparsed user input, e.g. from a form or flags
type RawSettings struct {
	FocusMinutes string
	BreakMinutes string
	Cycles       string
}

// ParseSettings turns raw input into clamped settings. A field that does not
// start with a number falls back to its default.
func ParseSettings(raw RawSettings) Settings {
	return Settings{
		FocusMinutes: ParseMinutes(raw.FocusMinutes, DefaultFocusMinutes, MinFocusMinutes, MaxFocusMinutes),
		BreakMinutes: ParseMinutes(raw.BreakMinutes, DefaultBreakMinutes, MinBreakMinutes, MaxBreakMinutes),
		Cycles:       ParseMinutes(raw.Cycles, DefaultCycles, MinCycles, MaxCycles),
	}
}

// ParseMinutes reads the leading integer of s and clamps it to [min, max].
// "12.5" reads as 12, "abc" yields fallback.
func ParseMinutes(s string, fallback, min, max int) int {
	n, ok := leadingInt(s)
	if !ok {
		return fallback
	}
	return clampInt(n, min, max)
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// overflow; saturate so clamping still picks the right bound
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
