// Package stats implements the StudyStats repository using PostgreSQL.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/carden-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carden-backend/internal/domain"
)

// Repo provides card stats persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByCardIDSQL = `
SELECT s.card_id, s.ease_factor, s.interval_days, s.repetitions,
       s.last_review_at, s.next_review_at, s.last_grade
FROM card_stats s
JOIN cards c ON c.id = s.card_id
JOIN decks d ON d.id = c.deck_id
WHERE s.card_id = $1 AND d.owner_id = $2`

const cardOwnedSQL = `
SELECT EXISTS (
    SELECT 1 FROM cards c
    JOIN decks d ON d.id = c.deck_id
    WHERE c.id = $1 AND d.owner_id = $2
)`

const upsertSuffix = `ON CONFLICT (card_id) DO UPDATE SET
    ease_factor    = EXCLUDED.ease_factor,
    interval_days  = EXCLUDED.interval_days,
    repetitions    = EXCLUDED.repetitions,
    last_review_at = EXCLUDED.last_review_at,
    next_review_at = EXCLUDED.next_review_at,
    last_grade     = EXCLUDED.last_grade,
    updated_at     = EXCLUDED.updated_at
RETURNING card_id, ease_factor, interval_days, repetitions, last_review_at, next_review_at, last_grade`

// GetByCardID returns the stats of a card owned by ownerID. A card that has
// never been reviewed has no stats and yields ErrNotFound.
func (r *Repo) GetByCardID(ctx context.Context, ownerID uuid.UUID, cardID int64) (*domain.StudyStats, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByCardIDSQL, cardID, ownerID)

	s, err := scanStats(row)
	if err != nil {
		return nil, postgres.MapError(err, "stats of card", cardID)
	}
	return s, nil
}

// Upsert writes upd as the card's stats, creating them on first review.
func (r *Repo) Upsert(ctx context.Context, ownerID uuid.UUID, cardID int64, upd domain.StatsUpdate) (*domain.StudyStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var owned bool
	if err := q.QueryRow(ctx, cardOwnedSQL, cardID, ownerID).Scan(&owned); err != nil {
		return nil, postgres.MapError(err, "card", cardID)
	}
	if !owned {
		return nil, fmt.Errorf("card %d: %w", cardID, domain.ErrNotFound)
	}

	sql, args, err := postgres.Builder().
		Insert("card_stats").
		Columns("card_id", "ease_factor", "interval_days", "repetitions",
			"last_review_at", "next_review_at", "last_grade", "updated_at").
		Values(cardID, upd.EaseFactor, upd.IntervalDays, upd.Repetitions,
			upd.ReviewedAt, upd.NextReviewAt, int16(upd.Grade), upd.ReviewedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats upsert: %w", err)
	}

	s, err := scanStats(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "stats of card", cardID)
	}
	return s, nil
}

func scanStats(row pgx.Row) (*domain.StudyStats, error) {
	var (
		s            domain.StudyStats
		lastReviewAt *time.Time
		nextReviewAt *time.Time
		lastGrade    *int16
	)
	if err := row.Scan(&s.CardID, &s.EaseFactor, &s.IntervalDays, &s.Repetitions,
		&lastReviewAt, &nextReviewAt, &lastGrade); err != nil {
		return nil, err
	}

	s.LastReviewAt = lastReviewAt
	s.NextReviewAt = nextReviewAt
	if lastGrade != nil {
		g := domain.Grade(*lastGrade)
		s.LastGrade = &g
	}
	return &s, nil
}
