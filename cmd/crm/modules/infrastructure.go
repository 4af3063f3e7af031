package modules

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/memohai/crm/internal/boot"
	"github.com/memohai/crm/internal/config"
	"github.com/memohai/crm/internal/db"
	"github.com/memohai/crm/internal/db/queries"
	"github.com/memohai/crm/internal/logger"
)

// ConfigPath is the TOML file to load; empty means config.DefaultConfigPath.
type ConfigPath string

var InfraModule = fx.Module(
	"infra",
	fx.Provide(
		provideConfig,
		provideLogger,
		boot.ProvideRuntimeConfig,
		provideDBConn,
		provideDBQueries,
	),
	fx.Invoke(ensureSchema),
)

// ---------------------------------------------------------------------------
// infrastructure providers
// ---------------------------------------------------------------------------

func provideConfig(path ConfigPath) (config.Config, error) {
	cfg, err := config.Load(string(path))
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func provideLogger(cfg config.Config) *slog.Logger {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return logger.L
}

func provideDBConn(lc fx.Lifecycle, rc *boot.RuntimeConfig) (*sql.DB, error) {
	conn, err := db.Open(context.Background(), rc.DatabaseConfig(), rc.Postgres)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return conn.Close()
		},
	})
	return conn, nil
}

func provideDBQueries(conn *sql.DB, rc *boot.RuntimeConfig) *queries.Queries {
	return queries.New(conn, rc.DatabaseDriver)
}

// ensureSchema migrates the store before the server starts accepting requests.
func ensureSchema(lc fx.Lifecycle, log *slog.Logger, conn *sql.DB, rc *boot.RuntimeConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.EnsureSchema(ctx, log.With(slog.String("component", "migrate")), conn, rc.DatabaseConfig(), rc.Postgres); err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
			return nil
		},
	})
}
