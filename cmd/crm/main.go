package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/memohai/crm/cmd/crm/modules"
	"github.com/memohai/crm/internal/boot"
	"github.com/memohai/crm/internal/config"
	"github.com/memohai/crm/internal/db"
	"github.com/memohai/crm/internal/logger"
	"github.com/memohai/crm/internal/version"
)

type rootOptions struct {
	configPath string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "crm",
		Short:        "CRM API server",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			boot.LoadEnv()
			if opts.configPath == "" {
				opts.configPath = os.Getenv("CONFIG_PATH")
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $CONFIG_PATH or "+config.DefaultConfigPath+")")
	cmd.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(modules.Options(opts.configPath))
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate {up|down|version|force N}",
		Short:     "Apply or roll back schema migrations",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"up", "down", "version", "force"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger.Init(cfg.Log.Level, cfg.Log.Format)
			rc, err := boot.ProvideRuntimeConfig(cfg)
			if err != nil {
				return err
			}
			conn, err := db.Open(cmd.Context(), rc.DatabaseConfig(), rc.Postgres)
			if err != nil {
				return fmt.Errorf("db connect: %w", err)
			}
			defer conn.Close()
			return db.RunMigrate(logger.L, conn, rc.DatabaseConfig(), rc.Postgres, args[0], args[1:])
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "crm %s\n", version.Get())
		},
	}
}

