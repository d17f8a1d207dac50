package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// runMigrations executes the requested goose migration command against the
// connected database and returns once it completes.
func runMigrations(db *sql.DB, command, dir string, logger *slog.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	logger.Info("Running migrations", "command", command, "dir", dir)

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return fmt.Errorf("migration up failed: %w", err)
		}
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return fmt.Errorf("migration down failed: %w", err)
		}
	case "status":
		if err := goose.Status(db, dir); err != nil {
			return fmt.Errorf("migration status failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration command %q (expected up, down, or status)", command)
	}

	logger.Info("Migrations completed", "command", command)
	return nil
}
