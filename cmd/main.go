// Package main provides the CLI entrypoint of the early-access tooling.
// It wires subcommands (submit, serve, migrate), loads configuration, and initializes logging.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"earlyaccess/internal/config"
	"earlyaccess/pkg/logger"
	"earlyaccess/pkg/storage"
	"earlyaccess/pkg/storage/memory"
	"earlyaccess/pkg/storage/postgres"
	"earlyaccess/pkg/storage/redis"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultConfigPath = "config.yml"

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getRedis connects to the redis server configured in cfg and returns the
// storage along with a cleanup function closing the client.
func getRedis(ctx context.Context, cfg *config.Config) (*redis.Redis, func()) {
	rds, err := redis.New(ctx, redis.Options{
		URL:       cfg.Redis.URL,
		KeyPrefix: cfg.Redis.KeyPrefix,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create redis storage", zap.Error(err))
	}

	return rds, func() {
		logger.Info(ctx, "closing redis client...")
		if err := rds.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// getStorage returns the signup storage selected by cfg.Storage.Driver.
func getStorage(ctx context.Context, cfg *config.Config) (storage.Storage, func()) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		return getPostgres(ctx, cfg)
	case config.StorageRedis:
		return getRedis(ctx, cfg)
	default:
		logger.Info(ctx, "using in-memory signup storage, signups are lost on exit")

		return memory.New(), func() {}
	}
}

// resolveConfigPath falls back to environment-only configuration when the
// default config file does not exist.
func resolveConfigPath(path string) string {
	if path != defaultConfigPath {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}

	return path
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "earlyaccess",
		Short: "Early-access email capture: terminal form, placeholder backend and migrations",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigPath, "Config File Path")

	configPath := flag.String("c", defaultConfigPath, "The config file path")
	flag.Parse()

	cfg, err := config.Load(resolveConfigPath(*configPath))
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		submitCommand(cfg),
		serveCommand(cfg),
		migrateCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
