package study

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/carden-backend/internal/domain"
)

// EvictIdle drops registry entries whose sessions are finished, or that have
// not been touched for longer than the session TTL. It returns how many
// learners were evicted.
func (s *Service) EvictIdle(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.learners {
		stale := now.Sub(e.touched) > s.cfg.SessionTTL
		if e.local != nil && (stale || e.local.Status().IsFinished()) {
			e.local = nil
		}
		if e.practice != nil && (stale || (e.practice.persisted && e.practice.session.Status().IsFinished())) {
			e.practice = nil
		}
		if e.local == nil && e.practice == nil {
			delete(s.learners, id)
			evicted++
		}
	}
	return evicted
}

// RunJanitor calls EvictIdle every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictIdle(s.clock.Now()); n > 0 {
				s.log.DebugContext(ctx, "evicted idle sessions", slog.Int("count", n))
			}
		}
	}
}

// PurgeResult reports how many history rows PurgeHistory removed.
type PurgeResult struct {
	ReviewLogs int64
	Practices  int64
}

// PurgeHistory deletes review logs and practice history older than before.
func (s *Service) PurgeHistory(ctx context.Context, before time.Time) (PurgeResult, error) {
	if before.IsZero() || before.After(s.clock.Now()) {
		return PurgeResult{}, domain.NewValidationError("before", "must be in the past")
	}

	var res PurgeResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if res.ReviewLogs, err = s.reviews.DeleteOlderThan(ctx, before); err != nil {
			return fmt.Errorf("delete review logs: %w", err)
		}
		if res.Practices, err = s.practices.DeleteOlderThan(ctx, before); err != nil {
			return fmt.Errorf("delete practice history: %w", err)
		}
		return nil
	})
	if err != nil {
		return PurgeResult{}, err
	}

	s.log.InfoContext(ctx, "study history purged",
		slog.Time("before", before),
		slog.Int64("review_logs", res.ReviewLogs),
		slog.Int64("practices", res.Practices),
	)
	return res, nil
}
