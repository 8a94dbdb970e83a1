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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                     TEXT PRIMARY KEY,
		run_start_km           REAL NOT NULL DEFAULT 1.0
		                       CHECK(run_start_km > 0),
		rest_timer_default_sec INTEGER NOT NULL DEFAULT 60
		                       CHECK(rest_timer_default_sec > 0),
		pushup_level           INTEGER NOT NULL DEFAULT 1
		                       CHECK(pushup_level BETWEEN 1 AND 7),
		pushup_start_date      TEXT,
		pushup_session_days    TEXT NOT NULL DEFAULT '1,3,5',
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS daily_records (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		date             TEXT NOT NULL,
		detox_status     TEXT NOT NULL DEFAULT ''
		                 CHECK(detox_status IN ('', 'success', 'fail')),
		run_target_km    REAL NOT NULL,
		run_actual_km    REAL,
		run_completed    INTEGER NOT NULL DEFAULT 0,
		pushup_week      INTEGER,
		pushup_session   INTEGER,
		pushup_completed INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		UNIQUE(user_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_records_user_date ON daily_records(user_id, date)`,

	`CREATE TABLE IF NOT EXISTS pushup_sets (
		id              TEXT PRIMARY KEY,
		daily_record_id TEXT NOT NULL REFERENCES daily_records(id) ON DELETE CASCADE,
		set_index       INTEGER NOT NULL
		                CHECK(set_index BETWEEN 1 AND 5),
		target_reps     INTEGER NOT NULL CHECK(target_reps > 0),
		completed       INTEGER NOT NULL DEFAULT 0,
		completed_at    TEXT,
		UNIQUE(daily_record_id, set_index)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pushup_sets_record ON pushup_sets(daily_record_id)`,
}
