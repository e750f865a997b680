package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/carden-backend/internal/config"
	"github.com/heartmarshall/carden-backend/migrations"
)

// Migration commands accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate applies, rolls back or reports the embedded schema migrations.
// Down rolls back a single version.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, command string) error {
	switch command {
	case MigrateUp, MigrateDown, MigrateStatus:
	default:
		return fmt.Errorf("migrate: unknown command %q (want up, down or status)", command)
	}

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("migrate: open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("migrate: create provider: %w", err)
	}

	switch command {
	case MigrateUp:
		results, err := provider.Up(ctx)
		for _, r := range results {
			logResult(logger, r)
		}
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		if len(results) == 0 {
			logger.Info("schema is up to date")
		}
	case MigrateDown:
		r, err := provider.Down(ctx)
		if r != nil {
			logResult(logger, r)
		}
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		for _, s := range statuses {
			attrs := []any{
				slog.Int64("version", s.Source.Version),
				slog.String("file", s.Source.Path),
				slog.String("state", string(s.State)),
			}
			if !s.AppliedAt.IsZero() {
				attrs = append(attrs, slog.Time("applied_at", s.AppliedAt))
			}
			logger.Info("migration", attrs...)
		}
	}
	return nil
}

func logResult(logger *slog.Logger, r *goose.MigrationResult) {
	attrs := []any{
		slog.Int64("version", r.Source.Version),
		slog.String("file", r.Source.Path),
		slog.String("direction", r.Direction),
		slog.Duration("duration", r.Duration),
	}
	if r.Error != nil {
		logger.Error("migration failed", append(attrs, slog.String("error", r.Error.Error()))...)
		return
	}
	logger.Info("migration applied", attrs...)
}
