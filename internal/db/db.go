package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// BuildDSN embeds the pragmas in the DSN so every connection in the pool
// gets them, not just the one that ran an Exec.
func BuildDSN(path string) string {
	pragmas := url.Values{}
	for _, pragma := range []string{
		"journal_mode(WAL)",
		"busy_timeout(30000)",
		"synchronous(NORMAL)",
		"foreign_keys(ON)",
	} {
		pragmas.Add("_pragma", pragma)
	}
	return "file:" + path + "?" + pragmas.Encode()
}

// Open opens the SQLite database at path, creating the parent directory if
// needed, and ensures the schema exists. Existing data is never dropped.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	database, err := sql.Open("sqlite", BuildDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := Migrate(database); err != nil {
		_ = database.Close()
		return nil, err
	}

	return database, nil
}
