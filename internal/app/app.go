package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/andy/forestfocus/internal/config"
	"github.com/andy/forestfocus/internal/crypto"
	"github.com/andy/forestfocus/internal/db"
	"github.com/andy/forestfocus/internal/domain"
	"github.com/andy/forestfocus/internal/repository"
	"github.com/andy/forestfocus/internal/service"
	"github.com/andy/forestfocus/internal/session"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config     *config.Config
	ConfigPath string // where SaveConfig writes; empty disables saving
	DB         *db.DB
	Logger     *slog.Logger

	logFile io.Closer

	// Repositories
	SettingsRepo repository.KeyValueStore
	FocusRepo    repository.FocusLogRepository

	// Services
	Rewards  *service.RewardLedger // nil when rewards are disabled
	Themes   *service.ThemeService
	Stats    service.StatsService
	Recorder *service.FocusRecorder
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading config
// 2. Opening the log file
// 3. Opening the database (asking the keyring for a key when encrypted)
// 4. Running migrations
// 5. Creating repositories and services
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	a, err := NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.ConfigPath = config.DefaultConfigPath()
	return a, nil
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	logger, logFile, err := openLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	database, err := openDatabase(cfg)
	if err != nil {
		closeQuietly(logFile)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		database.Close()
		closeQuietly(logFile)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	settingsRepo := repository.NewSettingsRepo(database)
	focusRepo := repository.NewFocusLogRepo(database)

	a := &App{
		Config:       cfg,
		DB:           database,
		Logger:       logger,
		logFile:      logFile,
		SettingsRepo: settingsRepo,
		FocusRepo:    focusRepo,
		Themes:       service.NewThemeService(settingsRepo, prefersLight, logger),
		Recorder:     service.NewFocusRecorder(focusRepo),
	}

	var totals func() domain.RewardTotals
	if cfg.Rewards.Enabled {
		a.Rewards = service.NewRewardLedger(ctx, settingsRepo, logger)
		totals = a.Rewards.Totals
	}
	a.Stats = service.NewStatsService(focusRepo, totals)

	logger.Info("app started", "db", cfg.Database.Path, "encrypted", cfg.Database.Encrypted)
	return a, nil
}

// SessionOptions returns controller options carrying this app's settings and
// services. The host fills in Presenter, Ticker, Activity and Clock.
func (a *App) SessionOptions() session.Options {
	opts := session.Options{
		Settings:   a.Config.Timer.Settings,
		GrowthMode: a.Config.GrowthMode(),
		IdleLimit:  a.Config.IdleLimit(),
		Recorder:   a.Recorder,
		Logger:     a.Logger,
	}
	// a nil *RewardLedger must not become a non-nil interface
	if a.Rewards != nil {
		opts.Rewards = a.Rewards
	}
	return opts
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	var err error
	if a.DB != nil {
		err = a.DB.Close()
	}
	closeQuietly(a.logFile)
	return err
}

// SaveConfig saves the current configuration to ConfigPath
func (a *App) SaveConfig() error {
	if a.ConfigPath == "" {
		return nil
	}
	return a.Config.Save(a.ConfigPath)
}

func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), nil, nil
	}

	f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, opts)), f, nil
}

func openDatabase(cfg *config.Config) (*db.DB, error) {
	if !cfg.Database.Encrypted {
		return db.OpenPlain(cfg.Database.Path)
	}
	return openEncrypted(cfg.Database.Path, crypto.NewKeyring(), promptForPassword)
}

// openEncrypted opens dbPath with the stored key, or with a freshly prompted
// one. A new key is only stored once the database has accepted it.
func openEncrypted(dbPath string, keyring crypto.Keyring, prompt func() (string, error)) (*db.DB, error) {
	account := crypto.AccountFor(dbPath)

	password, err := keyring.GetKey(account)
	fresh := err != nil
	if fresh {
		// No key exists, prompt user to set one
		fmt.Println("Setting up database encryption for the first time...")
		password, err = prompt()
		if err != nil {
			return nil, fmt.Errorf("failed to set password: %w", err)
		}
	}

	database, err := db.Open(dbPath, password)
	if err != nil {
		return nil, err
	}

	if fresh {
		if err := keyring.SetKey(account, password); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to store encryption key: %w", err)
		}
	}
	return database, nil
}

// promptForPassword prompts user for a new database password (first run)
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("Your focus history will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	// Read password securely (no echo)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured")
	fmt.Println()

	return string(password), nil
}

// prefersLight asks the terminal for its background when no theme is stored
func prefersLight() bool {
	return !lipgloss.HasDarkBackground()
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
