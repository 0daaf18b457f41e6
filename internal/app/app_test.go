package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/andy/forestfocus/internal/config"
	"github.com/andy/forestfocus/internal/crypto"
	"github.com/andy/forestfocus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "forestfocus.db")
	cfg.Log.Path = filepath.Join(dir, "logs", "forestfocus.log")
	return cfg
}

func TestNewWithConfigWiresServices(t *testing.T) {
	cfg := testConfig(t)

	a, err := NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.NotNil(t, a.Rewards)
	assert.NotNil(t, a.Themes)
	assert.NotNil(t, a.Stats)
	assert.NotNil(t, a.Recorder)
	assert.FileExists(t, cfg.Log.Path)

	opts := a.SessionOptions()
	assert.Equal(t, domain.DefaultSettings(), opts.Settings)
	assert.Equal(t, domain.GrowthContinuous, opts.GrowthMode)
	assert.Equal(t, cfg.IdleLimit(), opts.IdleLimit)
	assert.NotNil(t, opts.Rewards)
}

func TestRewardsDisabledLeavesSinkNil(t *testing.T) {
	cfg := testConfig(t)
	cfg.Rewards.Enabled = false

	a, err := NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	assert.Nil(t, a.Rewards)
	// must be a nil interface, not a typed nil
	assert.True(t, a.SessionOptions().Rewards == nil)
}

func TestRewardsSurviveRestart(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	a, err := NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	a.Rewards.Award(25)
	require.NoError(t, a.Close())

	b, err := NewWithConfig(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })

	assert.Equal(t, domain.RewardTotals{XP: 250, Coins: 5}, b.Rewards.Totals())
}

func TestSaveConfig(t *testing.T) {
	cfg := testConfig(t)

	a, err := NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	// no path, nothing written
	require.NoError(t, a.SaveConfig())

	a.ConfigPath = filepath.Join(t.TempDir(), "config.yaml")
	a.Config.Timer.Settings = domain.Settings{FocusMinutes: 50, BreakMinutes: 10, Cycles: 2}
	require.NoError(t, a.SaveConfig())

	_, err = os.Stat(a.ConfigPath)
	require.NoError(t, err)

	loaded, err := config.Load(a.ConfigPath)
	require.NoError(t, err)
	assert.Equal(t, a.Config.Timer.Settings, loaded.Timer.Settings)
}

type memKeyring map[string]string

func (m memKeyring) GetKey(account string) (string, error) {
	k, ok := m[account]
	if !ok {
		return "", crypto.ErrKeyNotFound
	}
	return k, nil
}

func (m memKeyring) SetKey(account, password string) error {
	m[account] = password
	return nil
}

func TestOpenEncryptedStoresKeyAfterOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forestfocus.db")
	keys := memKeyring{}
	prompts := 0
	prompt := func() (string, error) {
		prompts++
		return "100%pure&salt+pepper", nil
	}

	database, err := openEncrypted(path, keys, prompt)
	require.NoError(t, err)
	require.NoError(t, database.Close())
	assert.Equal(t, "100%pure&salt+pepper", keys[crypto.AccountFor(path)])

	// second launch uses the stored key
	database, err = openEncrypted(path, keys, prompt)
	require.NoError(t, err)
	require.NoError(t, database.Close())
	assert.Equal(t, 1, prompts)
}

func TestOpenEncryptedFailureKeepsKeyringClean(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	// the database directory cannot be created under a regular file
	path := filepath.Join(blocker, "forestfocus.db")

	keys := memKeyring{}
	_, err := openEncrypted(path, keys, func() (string, error) { return "secret", nil })
	require.Error(t, err)
	assert.Empty(t, keys)
}

func TestOpenEncryptedPromptError(t *testing.T) {
	keys := memKeyring{}
	_, err := openEncrypted(filepath.Join(t.TempDir(), "f.db"), keys, func() (string, error) {
		return "", errors.New("passwords do not match")
	})
	require.ErrorContains(t, err, "passwords do not match")
	assert.Empty(t, keys)
}
