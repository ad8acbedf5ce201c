package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T, dbPath string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestRunMigrations(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "tasks.db"))

	require.NoError(t, RunMigrations(db))

	// The tasks table exists with the expected columns
	_, err := db.Exec(`INSERT INTO tasks (title) VALUES ('migration check')`)
	require.NoError(t, err)

	var completed bool
	err = db.QueryRow(`SELECT completed FROM tasks WHERE title = 'migration check'`).Scan(&completed)
	require.NoError(t, err)
	assert.False(t, completed, "completed should default to false")
}

func TestRunMigrations_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	db := openTestDB(t, dbPath)

	require.NoError(t, RunMigrations(db))
	_, err := db.Exec(`INSERT INTO tasks (title) VALUES ('survivor')`)
	require.NoError(t, err)

	// Running again, including on a reopened handle, applies nothing
	require.NoError(t, RunMigrations(db))
	require.NoError(t, db.Close())

	reopened := openTestDB(t, dbPath)
	require.NoError(t, RunMigrations(reopened))

	var count int
	err = reopened.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunMigrations_RecordsVersions(t *testing.T) {
	db := openTestDB(t, filepath.Join(t.TempDir(), "tasks.db"))

	require.NoError(t, RunMigrations(db))

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&count)
	require.NoError(t, err)
	assert.Greater(t, count, 0)
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	// Versions are sorted and every migration carries both directions
	for i, m := range migrations {
		assert.NotZero(t, m.Version)
		assert.NotEmpty(t, m.Up)
		assert.NotEmpty(t, m.Down)
		if i > 0 {
			assert.Greater(t, m.Version, migrations[i-1].Version)
		}
	}
}
