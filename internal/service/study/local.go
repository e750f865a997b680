package study

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/google/uuid"

	"github.com/heartmarshall/carden-backend/internal/domain"
	"github.com/heartmarshall/carden-backend/internal/service/study/session"
)

const maxConcurrentPageLoads = 4

// StartLocalSession loads the whole deck and starts an untracked local session.
// It fails with ErrConflict while the learner has another active session.
func (s *Service) StartLocalSession(ctx context.Context, input StartLocalInput) (session.LocalSnapshot, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return session.LocalSnapshot{}, err
	}
	if err := input.Validate(); err != nil {
		return session.LocalSnapshot{}, err
	}

	if err := s.ensureIdle(learnerID); err != nil {
		return session.LocalSnapshot{}, err
	}

	deck, err := s.decks.GetByID(ctx, learnerID, input.DeckID)
	if err != nil {
		return session.LocalSnapshot{}, fmt.Errorf("get deck: %w", err)
	}

	cards, err := s.loadDeckCards(ctx, learnerID, deck.ID)
	if err != nil {
		return session.LocalSnapshot{}, fmt.Errorf("load deck cards: %w", err)
	}

	shuffle := s.cfg.ShuffleByDefault
	if input.Shuffle != nil {
		shuffle = *input.Shuffle
	}

	ls, err := session.StartLocal(deck.ID, deck.Title, cards, session.LocalOptions{
		Mode:    input.Mode,
		Shuffle: shuffle,
		Clock:   s.clock,
		Log:     s.log.With(slog.String("learner_id", learnerID.String())),
	})
	if err != nil {
		return session.LocalSnapshot{}, err
	}

	s.mu.Lock()
	e := s.entryLocked(learnerID)
	if e.busyLocked() {
		s.mu.Unlock()
		return session.LocalSnapshot{}, fmt.Errorf("start local session: %w", domain.ErrConflict)
	}
	e.local = ls
	e.practice = nil
	s.mu.Unlock()

	s.log.InfoContext(ctx, "local session started",
		slog.String("learner_id", learnerID.String()),
		slog.String("session_id", ls.ID().String()),
		slog.Int64("deck_id", deck.ID),
		slog.Int("cards", len(cards)),
		slog.Bool("shuffle", shuffle),
	)

	return ls.Snapshot(), nil
}

// loadDeckCards reads every page of the deck up front. Pages after the first
// are fetched concurrently.
func (s *Service) loadDeckCards(ctx context.Context, learnerID uuid.UUID, deckID int64) ([]domain.Card, error) {
	size := s.cfg.DeckPageSize
	first, err := s.cards.ListByDeck(ctx, learnerID, deckID, domain.PageRequest{Page: 0, Size: size})
	if err != nil {
		return nil, err
	}
	if first.TotalPages <= 1 {
		return first.Content, nil
	}

	pages := make([][]domain.Card, first.TotalPages)
	pages[0] = first.Content

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPageLoads)
	for p := 1; p < first.TotalPages; p++ {
		g.Go(func() error {
			page, err := s.cards.ListByDeck(gctx, learnerID, deckID, domain.PageRequest{Page: p, Size: size})
			if err != nil {
				return fmt.Errorf("page %d: %w", p, err)
			}
			pages[p] = page.Content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cards := make([]domain.Card, 0, first.TotalElements)
	for _, p := range pages {
		cards = append(cards, p...)
	}
	return cards, nil
}

// GetLocalSession returns the learner's local session.
func (s *Service) GetLocalSession(ctx context.Context) (session.LocalSnapshot, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return session.LocalSnapshot{}, err
	}
	ls, err := s.localSession(learnerID)
	if err != nil {
		return session.LocalSnapshot{}, fmt.Errorf("get local session: %w", err)
	}
	return ls.Snapshot(), nil
}

// ShowAnswer reveals the back of the current local card.
func (s *Service) ShowAnswer(ctx context.Context) (session.LocalSnapshot, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return session.LocalSnapshot{}, err
	}
	ls, err := s.localSession(learnerID)
	if err != nil {
		return session.LocalSnapshot{}, fmt.Errorf("show answer: %w", err)
	}
	ls.ShowAnswer()
	return ls.Snapshot(), nil
}

// RateCard rates the current local card and advances the session.
func (s *Service) RateCard(ctx context.Context, input RateCardInput) (session.LocalSnapshot, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return session.LocalSnapshot{}, err
	}
	if err := input.Validate(); err != nil {
		return session.LocalSnapshot{}, err
	}
	ls, err := s.localSession(learnerID)
	if err != nil {
		return session.LocalSnapshot{}, fmt.Errorf("rate card: %w", err)
	}

	snap, err := ls.RateCard(input.Difficulty)
	if err != nil {
		return snap, fmt.Errorf("rate card: %w", err)
	}

	if snap.Status == domain.SessionStatusComplete {
		s.log.InfoContext(ctx, "local session completed",
			slog.String("learner_id", learnerID.String()),
			slog.String("session_id", snap.ID.String()),
			slog.Int("ratings", snap.Ratings),
		)
	}
	return snap, nil
}

// LocalSummary returns the aggregate statistics of the local session.
func (s *Service) LocalSummary(ctx context.Context) (domain.SessionSummary, error) {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return domain.SessionSummary{}, err
	}
	ls, err := s.localSession(learnerID)
	if err != nil {
		return domain.SessionSummary{}, fmt.Errorf("local summary: %w", err)
	}
	return ls.Summary(), nil
}

// ResetLocalSession abandons the local session and forgets it.
func (s *Service) ResetLocalSession(ctx context.Context) error {
	learnerID, err := learnerFromCtx(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	e, ok := s.learners[learnerID]
	if !ok || e.local == nil {
		s.mu.Unlock()
		return fmt.Errorf("reset local session: %w", domain.ErrNotFound)
	}
	ls := e.local
	e.local = nil
	s.mu.Unlock()

	ls.Reset()

	s.log.InfoContext(ctx, "local session reset",
		slog.String("learner_id", learnerID.String()),
		slog.String("session_id", ls.ID().String()),
	)
	return nil
}

// ensureIdle fails with ErrConflict when the learner has an active session.
func (s *Service) ensureIdle(learnerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.learners[learnerID]; ok && e.busyLocked() {
		return domain.ErrConflict
	}
	return nil
}
