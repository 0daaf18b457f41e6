package repository

import (
	"context"
	"testing"
	"time"

	"github.com/andy/forestfocus/internal/db"
	"github.com/andy/forestfocus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.OpenPlain(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.RunMigrations())
	return database
}

func TestSettingsRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsRepo(openTestDB(t))

	_, ok, err := repo.Get(ctx, "forest-theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "forest-theme", "dark"))
	require.NoError(t, repo.Set(ctx, "forest-theme", "light"))

	got, ok, err := repo.Get(ctx, "forest-theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", got)

	require.NoError(t, repo.Delete(ctx, "forest-theme"))
	require.NoError(t, repo.Delete(ctx, "forest-theme"))
	_, ok, err = repo.Get(ctx, "forest-theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSettingsRepoReportsClosedDatabase(t *testing.T) {
	database, err := db.OpenPlain(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations())
	repo := NewSettingsRepo(database)
	require.NoError(t, database.Close())

	err = repo.Set(context.Background(), "forest-xp", "10")
	require.Error(t, err)
	assert.ErrorContains(t, err, "forest-xp")
}

func TestFocusLogRepoCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewFocusLogRepo(openTestDB(t))

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		completed := base.Add(time.Duration(i) * 24 * time.Hour)
		rec := &domain.FocusRecord{
			Cycle:        1,
			TotalCycles:  4,
			FocusMinutes: 25,
			StartedAt:    completed.Add(-25 * time.Minute),
			CompletedAt:  completed,
			XP:           250,
			Coins:        5,
		}
		require.NoError(t, repo.Create(ctx, rec))
		assert.NotZero(t, rec.ID)
	}

	records, err := repo.List(ctx, base, base.Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].CompletedAt.Equal(base))
	assert.True(t, records[0].StartedAt.Equal(base.Add(-25*time.Minute)))
	assert.Equal(t, 250, records[1].XP)
	assert.Equal(t, 5, records[1].Coins)

	require.NoError(t, repo.DeleteAll(ctx))
	records, err = repo.List(ctx, base, base.Add(72*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFocusLogRepoRejectsInvalidRecord(t *testing.T) {
	repo := NewFocusLogRepo(openTestDB(t))
	err := repo.Create(context.Background(), &domain.FocusRecord{Cycle: 1, TotalCycles: 1})
	require.Error(t, err)
}

func TestFocusLogRepoAllowsMissingStart(t *testing.T) {
	ctx := context.Background()
	repo := NewFocusLogRepo(openTestDB(t))
	completed := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &domain.FocusRecord{Cycle: 1, TotalCycles: 1, FocusMinutes: 5, CompletedAt: completed}))

	records, err := repo.List(ctx, completed, completed.Add(time.Second))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].StartedAt.IsZero())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Set(ctx, "forest-coins", "3"))
	v, ok, err := store.Get(ctx, "forest-coins")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	require.NoError(t, store.Delete(ctx, "forest-coins"))
	_, ok, err = store.Get(ctx, "forest-coins")
	require.NoError(t, err)
	assert.False(t, ok)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, store.Set(cancelled, "forest-coins", "4"), context.Canceled)
}

var (
	_ KeyValueStore      = (*SettingsRepo)(nil)
	_ KeyValueStore      = (*MemoryStore)(nil)
	_ FocusLogRepository = (*FocusLogRepo)(nil)
)
