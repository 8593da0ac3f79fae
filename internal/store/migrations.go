package store

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. Statements must be
// idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS rides (
		id INTEGER PRIMARY KEY,
		athlete_id INTEGER NOT NULL,
		athlete_name TEXT NOT NULL,
		name TEXT NOT NULL,
		bike TEXT,
		location TEXT,
		distance REAL NOT NULL,
		moving_time REAL NOT NULL,
		exported_at TEXT NOT NULL,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rides_athlete ON rides(athlete_id)`,
	`CREATE TABLE IF NOT EXISTS efforts (
		id INTEGER PRIMARY KEY,
		ride_id INTEGER NOT NULL REFERENCES rides(id) ON DELETE CASCADE,
		segment_id INTEGER NOT NULL,
		segment_name TEXT NOT NULL,
		elapsed_time REAL NOT NULL,
		created_at TEXT DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_efforts_ride ON efforts(ride_id)`,
}

func migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
