package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carden-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carden-backend/internal/auth"
	"github.com/heartmarshall/carden-backend/internal/config"
	"github.com/heartmarshall/carden-backend/internal/service/study"
)

// Cleanup deletes review logs and practice history older than olderThan.
// It is intended to be invoked by an external cron job.
func Cleanup(ctx context.Context, cfg *config.Config, logger *slog.Logger, olderThan time.Duration) (study.PurgeResult, error) {
	if olderThan <= 0 {
		return study.PurgeResult{}, fmt.Errorf("cleanup: older-than must be positive, got %s", olderThan)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return study.PurgeResult{}, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := newStudyService(cfg, postgres.NewTxManager(pool), pool, logger)
	return svc.PurgeHistory(ctx, time.Now().Add(-olderThan))
}

// IssueToken signs an access token for learnerID with the configured secret.
// It exists for local development; production tokens come from the identity provider.
func IssueToken(cfg config.AuthConfig, learnerID string) (string, error) {
	id, err := uuid.Parse(learnerID)
	if err != nil {
		return "", fmt.Errorf("learner id: %w", err)
	}
	return auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL).GenerateAccessToken(id)
}
