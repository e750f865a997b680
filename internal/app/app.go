// Package app wires configuration, storage, the study service and the HTTP
// transport into runnable commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/carden-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carden-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/carden-backend/internal/adapter/postgres/deck"
	"github.com/heartmarshall/carden-backend/internal/adapter/postgres/practice"
	"github.com/heartmarshall/carden-backend/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/carden-backend/internal/adapter/postgres/stats"
	"github.com/heartmarshall/carden-backend/internal/auth"
	"github.com/heartmarshall/carden-backend/internal/config"
	"github.com/heartmarshall/carden-backend/internal/service/study"
	"github.com/heartmarshall/carden-backend/internal/service/study/sm2"
	"github.com/heartmarshall/carden-backend/internal/transport/middleware"
	"github.com/heartmarshall/carden-backend/internal/transport/rest"
)

// quietPaths are logged at debug level only.
var quietPaths = []string{"/live", "/ready", "/health"}

// Run connects to the database and serves the study API until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting carden",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := newStudyService(cfg, postgres.NewTxManager(pool), pool, logger)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	health := rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Pinger: pool})
	handler, stop := newHandler(cfg, logger, health, rest.NewStudyHandler(svc, logger), tokens)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		svc.RunJanitor(gctx, cfg.Study.JanitorInterval)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("carden stopped")
	return nil
}

// newStudyConfig maps the srs and study config sections onto the service settings.
func newStudyConfig(cfg *config.Config) study.Config {
	return study.Config{
		ShuffleByDefault: cfg.Study.ShuffleByDefault,
		DeckPageSize:     cfg.Study.DeckPageSize,
		DueBatchSize:     cfg.SRS.DueBatchSize,
		MaxCards:         cfg.SRS.MaxCardsPerSession,
		ImminentWindow:   cfg.SRS.ImminentWindow,
		SessionTTL:       cfg.Study.SessionTTL,
		Params: sm2.Parameters{
			DefaultEase:     cfg.SRS.DefaultEaseFactor,
			MinEase:         cfg.SRS.MinEaseFactor,
			MaxIntervalDays: cfg.SRS.MaxIntervalDays,
		},
	}
}

func newStudyService(cfg *config.Config, tx *postgres.TxManager, db postgres.Querier, logger *slog.Logger) *study.Service {
	return study.NewService(
		logger,
		deck.New(db),
		card.New(db),
		stats.New(db),
		reviewlog.New(db),
		practice.New(db),
		tx,
		newStudyConfig(cfg),
	)
}

// newHandler builds the router and the middleware stack around it. The
// returned func releases background resources held by the stack.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	health *rest.HealthHandler,
	studyHandler *rest.StudyHandler,
	tokens *auth.JWTManager,
) (http.Handler, func()) {
	router := rest.NewRouter(health, studyHandler, middleware.RequireLearner(tokens))

	stack := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger, quietPaths...),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.CleanupInterval)
		stack = append(stack, limiter.Limit())
		stop = limiter.Stop
	}

	return middleware.Chain(stack...)(router), stop
}
