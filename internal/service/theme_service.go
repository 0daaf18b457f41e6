package service

import (
	"context"
	"log/slog"

	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/repository"
)

const KeyTheme = "forest-theme"

// ThemeService remembers the light/dark preference
type ThemeService struct {
	store  repository.KeyValueStore
	logger *slog.Logger

	// prefersLight reports the terminal's own preference when nothing is stored
	prefersLight func() bool

	current domain.Theme
}

// NewThemeService creates a theme service. prefersLight may be nil, meaning dark.
func NewThemeService(store repository.KeyValueStore, prefersLight func() bool, logger *slog.Logger) *ThemeService {
	if logger == nil {
		logger = slog.Default()
	}
	if prefersLight == nil {
		prefersLight = func() bool { return false }
	}
	return &ThemeService{store: store, prefersLight: prefersLight, logger: logger}
}

// Load returns the stored theme, falling back to the terminal preference.
// The resolved theme is applied (and persisted) either way.
func (s *ThemeService) Load(ctx context.Context) domain.Theme {
	stored, ok, err := s.store.Get(ctx, KeyTheme)
	if err != nil {
		s.logger.Warn("failed to read theme", "error", err)
	}
	if theme, valid := domain.ParseTheme(stored); ok && valid {
		return s.Apply(ctx, theme)
	}

	theme := domain.ThemeDark
	if s.prefersLight() {
		theme = domain.ThemeLight
	}
	return s.Apply(ctx, theme)
}

// Apply makes theme current and persists it; storage failures are ignored
func (s *ThemeService) Apply(ctx context.Context, theme domain.Theme) domain.Theme {
	s.current = theme
	if err := s.store.Set(ctx, KeyTheme, string(theme)); err != nil {
		s.logger.Warn("failed to save theme", "theme", theme, "error", err)
	}
	return theme
}

// Toggle flips between light and dark
func (s *ThemeService) Toggle(ctx context.Context) domain.Theme {
	return s.Apply(ctx, s.Current().Toggle())
}

// Current returns the theme last loaded or applied (dark before Load)
func (s *ThemeService) Current() domain.Theme {
	if s.current == "" {
		return domain.ThemeDark
	}
	return s.current
}
