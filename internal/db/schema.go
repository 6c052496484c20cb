package db

import (
	"database/sql"
	"fmt"
)

// IDs come from the snowflake node, so no AUTOINCREMENT.
const schema = `
CREATE TABLE IF NOT EXISTS feedback (
  id INTEGER PRIMARY KEY,
  message TEXT NOT NULL,
  rating INTEGER NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feedback_rating ON feedback(rating);
CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at);
`

// Migrate creates the schema if absent. Safe to run on every startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Reset drops the feedback table and recreates it empty. Operator-invoked
// maintenance only; the live service never calls this.
func Reset(db *sql.DB) error {
	if _, err := db.Exec(`DROP TABLE IF EXISTS feedback`); err != nil {
		return fmt.Errorf("drop feedback table: %w", err)
	}
	return Migrate(db)
}
