package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	dbembed "github.com/memohai/crm/db"
	"github.com/memohai/crm/internal/config"
)

// EnsureSchema brings the store up to the latest migration. It is idempotent
// and meant to run once at startup, before any request is served.
func EnsureSchema(ctx context.Context, logger *slog.Logger, conn *sql.DB, cfg config.DatabaseConfig, pg config.PostgresConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return RunMigrate(logger, conn, cfg, pg, "up", nil)
}

// RunMigrate applies or rolls back database migrations.
// Supported commands: "up", "down", "version", "force N".
// For SQLite the migrator runs over conn so in-memory stores work; for
// PostgreSQL it opens its own connection from the DSN.
func RunMigrate(logger *slog.Logger, conn *sql.DB, cfg config.DatabaseConfig, pg config.PostgresConfig, command string, args []string) error {
	switch command {
	case "up", "down", "version", "force":
	default:
		return fmt.Errorf("unknown migrate command: %s (use: up, down, version, force)", command)
	}
	if command == "force" && len(args) == 0 {
		return fmt.Errorf("force requires a version number argument")
	}
	if logger == nil {
		logger = slog.Default()
	}

	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverSQLite
	}
	migrationsFS, err := dbembed.Migrations(driver)
	if err != nil {
		return err
	}
	sourceDriver, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, closeFn, err := newMigrator(conn, driver, pg, sourceDriver)
	if err != nil {
		_ = sourceDriver.Close()
		return err
	}
	defer closeFn()

	m.Log = &migrateLogger{logger: logger}

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
		ver, dirty, _ := m.Version()
		logger.Info("migration complete", slog.Uint64("version", uint64(ver)), slog.Bool("dirty", dirty))

	case "down":
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Info("all migrations rolled back")

	case "version":
		ver, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("migrate version: %w", err)
		}
		logger.Info("current version", slog.Uint64("version", uint64(ver)), slog.Bool("dirty", dirty))

	case "force":
		var version int
		if _, err := fmt.Sscanf(args[0], "%d", &version); err != nil {
			return fmt.Errorf("invalid version: %w", err)
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("migrate force: %w", err)
		}
		logger.Info("forced version", slog.Int("version", version))
	}

	return nil
}

// newMigrator returns the migrator and a cleanup func. The SQLite database
// driver wraps conn, and closing it would close conn, so only the source is
// released there.
func newMigrator(conn *sql.DB, driver string, pg config.PostgresConfig, sourceDriver source.Driver) (*migrate.Migrate, func(), error) {
	switch driver {
	case config.DriverSQLite:
		if conn == nil {
			return nil, nil, fmt.Errorf("sqlite migrations need an open connection")
		}
		dbDriver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("migrate driver: %w", err)
		}
		m, err := migrate.NewWithInstance("iofs", sourceDriver, config.DriverSQLite, dbDriver)
		if err != nil {
			return nil, nil, fmt.Errorf("migrate init: %w", err)
		}
		return m, func() { _ = sourceDriver.Close() }, nil
	case config.DriverPostgres:
		m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, DSN(pg))
		if err != nil {
			return nil, nil, fmt.Errorf("migrate init: %w", err)
		}
		return m, func() { _, _ = m.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *migrateLogger) Verbose() bool {
	return false
}
