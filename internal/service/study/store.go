package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carden-backend/internal/domain"
	"github.com/heartmarshall/carden-backend/internal/service/study/session"
)

// learnerStore binds the repositories to one learner so a PracticeSession can use them as its CardStore.
type learnerStore struct {
	svc       *Service
	learnerID uuid.UUID
}

var _ session.CardStore = learnerStore{}

func (l learnerStore) DueSummary(ctx context.Context, deckID *int64, now time.Time) (domain.DueSummary, error) {
	return l.svc.cards.DueSummary(ctx, l.learnerID, deckID, now)
}

func (l learnerStore) ListDue(ctx context.Context, deckID *int64, now time.Time, page domain.PageRequest) (domain.Page[domain.DueCard], error) {
	return l.svc.cards.ListDue(ctx, l.learnerID, deckID, now, page)
}

// SaveStats upserts the card's stats and appends a review log in one transaction.
func (l learnerStore) SaveStats(ctx context.Context, cardID int64, upd domain.StatsUpdate) (domain.StudyStats, error) {
	var saved *domain.StudyStats

	err := l.svc.tx.RunInTx(ctx, func(ctx context.Context) error {
		prev, err := l.svc.stats.GetByCardID(ctx, l.learnerID, cardID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get stats: %w", err)
		}

		saved, err = l.svc.stats.Upsert(ctx, l.learnerID, cardID, upd)
		if err != nil {
			return fmt.Errorf("upsert stats: %w", err)
		}

		if err := l.svc.reviews.Create(ctx, &domain.ReviewLog{
			ID:             uuid.New(),
			CardID:         cardID,
			LearnerID:      l.learnerID,
			Grade:          upd.Grade,
			PrevStats:      prev,
			ResponseTimeMs: upd.ResponseTimeMs,
			ReviewedAt:     upd.ReviewedAt,
		}); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.StudyStats{}, err
	}
	return *saved, nil
}
