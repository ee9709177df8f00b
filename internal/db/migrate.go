package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// The ledger tables are append-only: nothing in the application issues
// UPDATE or DELETE against therapy_sessions, applied_techniques, or
// session_feedback. safety_plans is the one mutable table, keyed by user.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS therapy_sessions (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		issue           TEXT NOT NULL DEFAULT '',
		emotional_state TEXT NOT NULL DEFAULT '[]',
		started_at      TEXT NOT NULL,
		created_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_therapy_sessions_user ON therapy_sessions(user_id, started_at)`,

	`CREATE TABLE IF NOT EXISTS applied_techniques (
		id           TEXT PRIMARY KEY,
		session_id   TEXT NOT NULL REFERENCES therapy_sessions(id) ON DELETE CASCADE,
		technique_id TEXT NOT NULL,
		seq          INTEGER NOT NULL CHECK(seq >= 0),
		created_at   TEXT NOT NULL,
		UNIQUE (session_id, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_applied_techniques_session ON applied_techniques(session_id)`,

	`CREATE TABLE IF NOT EXISTS session_feedback (
		id           TEXT PRIMARY KEY,
		session_id   TEXT NOT NULL REFERENCES therapy_sessions(id) ON DELETE CASCADE,
		technique_id TEXT NOT NULL,
		rating       INTEGER NOT NULL CHECK(rating BETWEEN 0 AND 10),
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_feedback_session ON session_feedback(session_id)`,

	`CREATE TABLE IF NOT EXISTS safety_plans (
		user_id               TEXT PRIMARY KEY,
		warning_signals       TEXT NOT NULL DEFAULT '[]',
		coping_strategies     TEXT NOT NULL DEFAULT '[]',
		support_contacts      TEXT NOT NULL DEFAULT '[]',
		professional_contacts TEXT NOT NULL DEFAULT '[]',
		environmental_safety  TEXT NOT NULL DEFAULT '[]',
		reasons_for_living    TEXT NOT NULL DEFAULT '[]',
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,
}
