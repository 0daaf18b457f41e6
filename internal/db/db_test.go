package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsIsIdempotent(t *testing.T) {
	database, err := OpenPlain(filepath.Join(t.TempDir(), "nested", "forest.db"))
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.RunMigrations())
	require.NoError(t, database.RunMigrations())

	v, err := database.Version()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)

	var n int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&n))
	assert.Equal(t, len(migrations), n)
}

func TestMigrationsCreateTables(t *testing.T) {
	database, err := OpenPlain(":memory:")
	require.NoError(t, err)
	defer database.Close()
	require.NoError(t, database.RunMigrations())

	for _, table := range []string{"settings", "focus_log"} {
		var name string
		err := database.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestOpenKeepsPasswordIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forest.db")
	const password = "100%pure&salt+pepper"

	database, err := Open(path, password)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations())
	_, err = database.Exec("INSERT INTO settings (key, value) VALUES ('forest-xp', '40')")
	require.NoError(t, err)
	require.NoError(t, database.Close())

	database, err = Open(path, password)
	require.NoError(t, err)
	var xp string
	require.NoError(t, database.QueryRow("SELECT value FROM settings WHERE key = 'forest-xp'").Scan(&xp))
	assert.Equal(t, "40", xp)
	require.NoError(t, database.Close())

	// neither the text before '&' nor a '+' read as a space unlocks it
	for _, wrong := range []string{"100%pure", "100%pure&salt pepper"} {
		database, err = Open(path, wrong)
		if err == nil {
			database.Close()
		}
		assert.Error(t, err, wrong)
	}
}
