package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/avast/retry-go"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/carden-backend/internal/config"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// The first ping is retried with exponential backoff so the service can start
// alongside its database.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pingWithRetry(ctx, pool, cfg, log); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

func pingWithRetry(ctx context.Context, db pinger, cfg config.DatabaseConfig, log *slog.Logger) error {
	err := retry.Do(
		func() error { return db.Ping(ctx) },
		retry.Context(ctx),
		retry.Attempts(cfg.ConnectAttempts),
		retry.Delay(cfg.ConnectDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.WarnContext(ctx, "database not ready",
				slog.Uint64("attempt", uint64(n+1)),
				slog.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
