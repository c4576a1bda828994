package db

import (
	"database/sql"
	"io"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// NewTestDB creates a DB instance for testing with a no-op logger
// This is only for use in tests where logging output is not needed, typically
// around a go-sqlmock connection.
func NewTestDB(sqlDB *sql.DB) *DB {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &DB{
		DB:     sqlx.NewDb(sqlDB, "postgres"),
		logger: logger,
	}
}
