package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver

	"github.com/memohai/crm/internal/config"
)

// MemoryPath selects a private in-memory SQLite database.
const MemoryPath = ":memory:"

// Open connects to the store selected by cfg. SQLite connections enforce
// foreign keys; an in-memory database is pinned to a single connection so
// every query sees the same data.
func Open(ctx context.Context, cfg config.DatabaseConfig, pg config.PostgresConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return openSQLite(ctx, cfg.Path)
	case config.DriverPostgres:
		conn, err := sql.Open("pgx", DSN(pg))
		if err != nil {
			return nil, err
		}
		if err := conn.PingContext(ctx); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("db path is required")
	}
	inMemory := path == MemoryPath
	if !inMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, err
	}
	if inMemory {
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return conn, nil
}

// SQLiteDSN appends the per-connection pragmas every SQLite handle needs.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}
