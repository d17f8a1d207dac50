// Package main implements the entry point for the lexidrill API server,
// which manages vocabulary categories and grades daily translation drills.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/lexidrill/lexidrill-api/internal/config"
	"github.com/lexidrill/lexidrill-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) and exit")
	migrationsDir := flag.String("migrations-dir", "db/migrations",
		"path to the goose migration files")
	flag.Parse()

	if err := run(*migrateCmd, *migrationsDir); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run wires configuration, logging, the database, and the application
// together. When a migration command is given it runs that instead of
// serving.
func run(migrateCmd, migrationsDir string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"time_zone", cfg.Progress.TimeZone)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if err := db.Close(); err != nil {
				appLogger.Error("Error closing database connection", "error", err)
			}
		}()
		return runMigrations(db, migrateCmd, migrationsDir, appLogger)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
