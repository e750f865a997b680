package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carden-backend/internal/domain"
	"github.com/heartmarshall/carden-backend/internal/service/study/session"
)

// StartPracticeResult is the outcome of StartPractice. Session is nil when
// cards exist but none is due yet; Availability then says when the next one is.
type StartPracticeResult struct {
	Session      *session.PracticeSnapshot
	Availability domain.DueSummary
}

// NextCardResult carries the card to show, or nil once the session is over or
// while it waits for an imminently due card.
type NextCardResult struct {
	Card    *session.PracticeCard
	Session session.PracticeSnapshot
}

// GetDue returns the due summary for the learner, optionally narrowed to a deck.
func (s *Service) GetDue(ctx context.Context, input GetDueInput) (domain.DueSummary, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return domain.DueSummary{}, err
	}
	if err := input.Validate(); err != nil {
		return domain.DueSummary{}, err
	}

	sum, err := s.cards.DueSummary(ctx, learnerID, input.DeckID, s.clock.Now())
	if err != nil {
		return domain.DueSummary{}, domain.Retryable("get due summary", err)
	}
	return sum, nil
}

// StartPractice opens an SRS session over the learner's due cards.
func (s *Service) StartPractice(ctx context.Context, input StartPracticeInput) (StartPracticeResult, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return StartPracticeResult{}, err
	}
	if err := input.Validate(); err != nil {
		return StartPracticeResult{}, err
	}
	if err := s.ensureIdle(learnerID); err != nil {
		return StartPracticeResult{}, err
	}

	ps, availability, err := session.StartPractice(ctx, learnerStore{svc: s, learnerID: learnerID}, session.PracticeOptions{
		Mode:           input.Mode,
		DeckID:         input.DeckID,
		BatchSize:      s.cfg.DueBatchSize,
		MaxCards:       s.cfg.MaxCards,
		ImminentWindow: s.cfg.ImminentWindow,
		Params:         s.cfg.Params,
		Clock:          s.clock,
		Log:            s.log.With(slog.String("learner_id", learnerID.String())),
	})
	if err != nil {
		return StartPracticeResult{Availability: availability}, fmt.Errorf("start practice: %w", err)
	}
	if ps == nil {
		s.log.InfoContext(ctx, "no cards due yet",
			slog.String("learner_id", learnerID.String()),
			slog.Int("minutes_until_next", availability.MinutesUntilNext),
		)
		return StartPracticeResult{Availability: availability}, nil
	}

	s.mu.Lock()
	e := s.entryLocked(learnerID)
	if e.busyLocked() {
		s.mu.Unlock()
		ps.Reset()
		return StartPracticeResult{}, fmt.Errorf("start practice: %w", domain.ErrConflict)
	}
	e.practice = &practiceEntry{session: ps}
	e.local = nil
	s.mu.Unlock()

	snap := ps.Snapshot()
	s.log.InfoContext(ctx, "practice session started",
		slog.String("learner_id", learnerID.String()),
		slog.String("session_id", snap.ID.String()),
		slog.String("mode", snap.Mode.String()),
		slog.Int("due", availability.DueCards),
	)

	return StartPracticeResult{Session: &snap, Availability: availability}, nil
}

// GetPracticeSession returns the learner's practice session.
func (s *Service) GetPracticeSession(ctx context.Context) (session.PracticeSnapshot, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return session.PracticeSnapshot{}, err
	}
	pe, err := s.practiceSession(learnerID)
	if err != nil {
		return session.PracticeSnapshot{}, fmt.Errorf("get practice session: %w", err)
	}
	return pe.session.Snapshot(), nil
}

// NextCard returns the card to review next.
func (s *Service) NextCard(ctx context.Context) (NextCardResult, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return NextCardResult{}, err
	}
	pe, err := s.practiceSession(learnerID)
	if err != nil {
		return NextCardResult{}, fmt.Errorf("next card: %w", err)
	}

	card, err := pe.session.NextCard(ctx)
	if err != nil {
		return NextCardResult{}, fmt.Errorf("next card: %w", err)
	}
	return NextCardResult{Card: card, Session: pe.session.Snapshot()}, nil
}

// SubmitReview grades the current practice card and persists the new schedule.
func (s *Service) SubmitReview(ctx context.Context, input SubmitReviewInput) (session.PracticeCard, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return session.PracticeCard{}, err
	}
	if err := input.Validate(); err != nil {
		return session.PracticeCard{}, fmt.Errorf("submit review: %w", err)
	}
	pe, err := s.practiceSession(learnerID)
	if err != nil {
		return session.PracticeCard{}, fmt.Errorf("submit review: %w", err)
	}

	card, err := pe.session.SubmitReview(ctx, input.Grade, input.ResponseTimeMs)
	if err != nil {
		return session.PracticeCard{}, fmt.Errorf("submit review: %w", err)
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("learner_id", learnerID.String()),
		slog.Int64("card_id", card.ID),
		slog.String("grade", input.Grade.String()),
		slog.Int("interval_days", card.NewStats.IntervalDays),
	)
	return card, nil
}

// CompletePractice finishes the session and stores its summary as history.
// The summary is computed once; if storing it fails, a later call retries the store.
func (s *Service) CompletePractice(ctx context.Context) (domain.SessionSummary, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return domain.SessionSummary{}, err
	}
	pe, err := s.practiceSession(learnerID)
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("complete practice: %w", err)
	}

	summary, err := pe.session.Complete()
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("complete practice: %w", err)
	}

	s.mu.Lock()
	persisted := pe.persisted
	s.mu.Unlock()
	if persisted {
		return summary, nil
	}

	snap := pe.session.Snapshot()
	// The session id doubles as the record id so a retried store is idempotent.
	rec := &domain.PracticeRecord{
		ID:         snap.ID,
		LearnerID:  learnerID,
		DeckID:     snap.DeckID,
		Mode:       snap.Mode,
		Summary:    summary,
		StartedAt:  summary.StartedAt,
		FinishedAt: *summary.FinishedAt,
	}
	if err := s.practices.Create(ctx, rec); err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
		return summary, domain.Retryable("store practice summary", err)
	}

	s.mu.Lock()
	pe.persisted = true
	s.mu.Unlock()

	s.log.InfoContext(ctx, "practice session completed",
		slog.String("learner_id", learnerID.String()),
		slog.String("session_id", snap.ID.String()),
		slog.Int("reviewed", summary.ReviewedCards),
		slog.Int("accuracy", summary.Accuracy),
	)
	return summary, nil
}

// ResetPractice abandons the practice session. A write-back already in
// progress still completes.
func (s *Service) ResetPractice(ctx context.Context) error {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	e, ok := s.learners[learnerID]
	if !ok || e.practice == nil {
		s.mu.Unlock()
		return fmt.Errorf("reset practice: %w", domain.ErrNotFound)
	}
	pe := e.practice
	e.practice = nil
	s.mu.Unlock()

	pe.session.Reset()

	s.log.InfoContext(ctx, "practice session reset",
		slog.String("learner_id", learnerID.String()),
		slog.String("session_id", pe.session.ID().String()),
	)
	return nil
}

// ListPracticeHistory returns the learner's finished practice sessions, newest first.
func (s *Service) ListPracticeHistory(ctx context.Context, input ListHistoryInput) ([]domain.PracticeRecord, int, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 20
	}

	records, total, err := s.practices.ListByLearner(ctx, learnerID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list practice history: %w", err)
	}
	return records, total, nil
}
