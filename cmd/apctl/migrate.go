package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/ap_reconciliation_app/internal/platform/config"
	"github.com/SscSPs/ap_reconciliation_app/pkg/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Applies the SQL migrations under MIGRATIONS_PATH to the database at PGSQL_URL.
Both are read from the environment or a .env file, like the API server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, slog.Default())
		},
	}
}
