package store

import (
	"database/sql"
)

// NewTestStore creates a Store for testing with an already-open database.
// This is only intended for use in tests.
func NewTestStore(sqlDB *sql.DB) *Store {
	return newStore(sqlDB)
}

// Migrate applies the schema to an arbitrary database. Exposed for tests
// that open their own in-memory connection.
func Migrate(sqlDB *sql.DB) error {
	return migrate(sqlDB)
}
