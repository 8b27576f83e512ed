package store

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS participants (
		name TEXT PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS mistakes (
		name    TEXT NOT NULL,
		mistake TEXT NOT NULL,
		count   INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (name, mistake)
	)`,
	`CREATE TABLE IF NOT EXISTS translations (
		id      INTEGER PRIMARY KEY AUTOINCREMENT,
		english TEXT NOT NULL,
		hebrew  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS translation_suggestions (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		english   TEXT NOT NULL,
		hebrew    TEXT NOT NULL,
		suggestor TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS mistake_suggestions (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		mistake  TEXT NOT NULL,
		context  TEXT NOT NULL DEFAULT '',
		reporter TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS canonical_suggestions (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		word      TEXT NOT NULL,
		canonical TEXT NOT NULL,
		suggestor TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS canonical_words (
		word      TEXT PRIMARY KEY,
		canonical TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS moderation_log (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		kind          TEXT NOT NULL,
		suggestion_id INTEGER NOT NULL,
		accepted      INTEGER NOT NULL,
		actor         TEXT NOT NULL DEFAULT '',
		resolved_at   TEXT NOT NULL
	)`,
}

// migrate applies the schema. Statements are idempotent so re-running on an
// existing database is safe.
func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
