package main

import (
	"context"
	"database/sql"
	"log/slog"

	root "earlyaccess"
	"earlyaccess/internal/config"
	"earlyaccess/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the signup
// schema migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var status bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the signup database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			goose.SetBaseFS(root.Migrations)
			goose.SetLogger(logger.StdLogger(ctx, slog.LevelInfo))

			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}

			db := strg.DB.(*sql.DB)
			if status {
				if err := goose.StatusContext(ctx, db, "migrations"); err != nil {
					logger.Fatal(ctx, "could not get migration status", zap.Error(err))
				}

				return
			}
			if err := goose.UpContext(ctx, db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			version, err := goose.GetDBVersionContext(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not get database version", zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.Int64("version", version))
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "Print the migration status instead of migrating")

	return cmd
}
