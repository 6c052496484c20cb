// Package testutil provides a real SQLite fixture for repository tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"feedboard/internal/db"
	"feedboard/internal/snowflake"
)

// NewTestDB opens a fresh database in the test's temp dir with the schema
// applied, and initializes the snowflake node repositories insert with.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	require.NoError(t, snowflake.Init(0))

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}
