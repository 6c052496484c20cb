package db_test

import (
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"feedboard/internal/db"
)

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	var name string
	err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='feedback'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "feedback", name)

	// Parent dir was created on demand
	_, err = os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err)
}

func TestOpen_PreservesExistingData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database, err := db.Open(dbPath)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO feedback (id, message, rating, created_at) VALUES (1, 'kept', 5, '2026-01-01T00:00:00.000000Z')`)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	reopened, err := db.Open(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	var count int
	require.NoError(t, reopened.QueryRow(`SELECT COUNT(*) FROM feedback`).Scan(&count))
	require.Equal(t, 1, count)
}

// Pragmas must be embedded in the DSN so every connection in the pool has
// them; Exec-applied pragmas only reach the connection that ran them.
func TestBuildDSN_AllPragmasInDSN(t *testing.T) {
	dsn := db.BuildDSN("mydb.sqlite")
	require.True(t, len(dsn) > 0)
	require.Contains(t, dsn, "file:mydb.sqlite")

	decodedDSN, err := url.QueryUnescape(dsn)
	require.NoError(t, err)

	expectedPragmas := []string{
		"journal_mode(WAL)",
		"busy_timeout(30000)",
		"synchronous(NORMAL)",
		"foreign_keys(ON)",
	}
	for _, pragma := range expectedPragmas {
		require.Contains(t, decodedDSN, pragma)
	}
}

func TestReset_DropsExistingRows(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO feedback (id, message, rating, created_at) VALUES (1, 'gone', 1, '2026-01-01T00:00:00.000000Z')`)
	require.NoError(t, err)

	require.NoError(t, db.Reset(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM feedback`).Scan(&count))
	require.Zero(t, count)
}

func TestMigrate_ClosedDB(t *testing.T) {
	database, err := sql.Open("sqlite", "file::memory:?cache=shared")
	require.NoError(t, err)
	require.NoError(t, database.Close())

	err = db.Migrate(database)
	require.Error(t, err)
}
