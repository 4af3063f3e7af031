// Package dbtest opens throwaway stores for package tests.
package dbtest

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/memohai/crm/internal/config"
	"github.com/memohai/crm/internal/db"
	"github.com/memohai/crm/internal/db/queries"
)

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Open returns a migrated in-memory SQLite store that is closed when t ends.
func Open(t testing.TB) (*sql.DB, *queries.Queries) {
	t.Helper()
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: db.MemoryPath}
	ctx := context.Background()
	conn, err := db.Open(ctx, cfg, config.PostgresConfig{})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.EnsureSchema(ctx, Logger(), conn, cfg, config.PostgresConfig{}); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return conn, queries.New(conn, config.DriverSQLite)
}
