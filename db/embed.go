package db

import (
	"embed"
	"fmt"
	"io/fs"
)

// MigrationsFS contains all SQL migration files embedded at compile time,
// one directory per dialect.
//
//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var MigrationsFS embed.FS

// Migrations returns the migration files for driver with the .sql files at the root.
func Migrations(driver string) (fs.FS, error) {
	switch driver {
	case "sqlite", "postgres":
		return fs.Sub(MigrationsFS, "migrations/"+driver)
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}
