// Package boot provides runtime configuration and dependency wiring for the server.
package boot

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/memohai/crm/internal/config"
)

// RuntimeConfig holds parsed runtime settings (server address, store selection).
// Values may be overridden by environment variables (e.g. HTTP_ADDR, DATABASE_PATH).
type RuntimeConfig struct {
	ServerAddr     string
	DatabaseDriver string
	DatabasePath   string
	Postgres       config.PostgresConfig
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() {
	_ = godotenv.Load()
}

// ProvideRuntimeConfig builds RuntimeConfig from the given config and applies env overrides.
func ProvideRuntimeConfig(cfg config.Config) (*RuntimeConfig, error) {
	ret := &RuntimeConfig{
		ServerAddr:     cfg.Server.Addr,
		DatabaseDriver: cfg.Database.Driver,
		DatabasePath:   cfg.Database.Path,
		Postgres:       cfg.Postgres,
	}

	if value := os.Getenv("HTTP_ADDR"); value != "" {
		ret.ServerAddr = value
	}
	if value := os.Getenv("DATABASE_DRIVER"); value != "" {
		ret.DatabaseDriver = value
	}
	if value := os.Getenv("DATABASE_PATH"); value != "" {
		ret.DatabasePath = value
	}

	ret.DatabaseDriver = strings.ToLower(strings.TrimSpace(ret.DatabaseDriver))
	if ret.DatabaseDriver == "" {
		ret.DatabaseDriver = config.DefaultDriver
	}
	switch ret.DatabaseDriver {
	case config.DriverSQLite:
		if strings.TrimSpace(ret.DatabasePath) == "" {
			ret.DatabasePath = config.DefaultSQLitePath
		}
	case config.DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", ret.DatabaseDriver)
	}
	return ret, nil
}

// DatabaseConfig returns the store selection in the shape config consumers expect.
func (r *RuntimeConfig) DatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{Driver: r.DatabaseDriver, Path: r.DatabasePath}
}
