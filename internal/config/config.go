package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andy/forestfocus/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Database settings
	Database DatabaseConfig `yaml:"database"`

	// Default session settings
	Timer TimerConfig `yaml:"timer"`

	// Visual growth
	Growth GrowthConfig `yaml:"growth"`

	// XP and coins
	Rewards RewardsConfig `yaml:"rewards"`

	Log LogConfig `yaml:"log"`
}

type DatabaseConfig struct {
	Path      string `yaml:"path"`      // Path to SQLite database
	Encrypted bool   `yaml:"encrypted"` // Use SQLCipher with a key from the system keyring
}

type TimerConfig struct {
	domain.Settings  `yaml:",inline"`
	IdleLimitSeconds int `yaml:"idle_limit_seconds"` // 0 disables idle auto-pause
}

type GrowthConfig struct {
	Mode string `yaml:"mode"` // "continuous" or "staged"
}

type RewardsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// configDir returns ~/.config/forestfocus
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "forestfocus")
}

// DefaultConfigPath returns ~/.config/forestfocus/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := configDir()

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "forestfocus.db"),
		},
		Timer: TimerConfig{
			Settings:         domain.DefaultSettings(),
			IdleLimitSeconds: 60,
		},
		Growth: GrowthConfig{
			Mode: string(domain.GrowthContinuous),
		},
		Rewards: RewardsConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Path:  filepath.Join(dir, "forestfocus.log"),
			Level: "info",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Out-of-range timer values are corrected, not rejected
	cfg.Timer.Settings = cfg.Timer.Settings.Clamp()
	if cfg.Timer.IdleLimitSeconds < 0 {
		cfg.Timer.IdleLimitSeconds = 0
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the database and log directories
func (c *Config) EnsureDirectories() error {
	for _, p := range []string{c.Database.Path, c.Log.Path} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return err
		}
	}
	return nil
}

// IdleLimit returns the idle auto-pause threshold
func (c *Config) IdleLimit() time.Duration {
	return time.Duration(c.Timer.IdleLimitSeconds) * time.Second
}

// GrowthMode returns the configured growth projection
func (c *Config) GrowthMode() domain.GrowthMode {
	return domain.ParseGrowthMode(c.Growth.Mode)
}

// LogLevel maps the configured level name to a slog level, defaulting to info
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
