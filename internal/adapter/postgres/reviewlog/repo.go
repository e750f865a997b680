// Package reviewlog implements the ReviewLog repository using PostgreSQL.
package reviewlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	postgres "github.com/heartmarshall/carden-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carden-backend/internal/domain"
)

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO review_logs (id, card_id, learner_id, grade, prev_stats, response_time_ms, reviewed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const deleteOlderThanSQL = `DELETE FROM review_logs WHERE reviewed_at < $1`

// Create inserts a review log. The previous stats are stored as JSONB, NULL
// for a card's first review.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) error {
	prev, err := marshalPrevStats(log.PrevStats)
	if err != nil {
		return fmt.Errorf("create review log: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		log.ID, log.CardID, log.LearnerID, int16(log.Grade), prev, log.ResponseTimeMs, log.ReviewedAt,
	)
	if err != nil {
		return postgres.MapError(err, "review log", log.ID)
	}
	return nil
}

// DeleteOlderThan removes review logs recorded before the cutoff and returns
// how many were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteOlderThanSQL, before)
	if err != nil {
		return 0, postgres.MapError(err, "review logs before", before.Format(time.RFC3339))
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

// statsSnapshotJSON is the JSONB shape of the stats a review replaced.
// domain.StudyStats has no json tags, so the repo layer handles serialization.
type statsSnapshotJSON struct {
	EaseFactor   float64    `json:"ease_factor"`
	IntervalDays int        `json:"interval_days"`
	Repetitions  int        `json:"repetitions"`
	LastReviewAt *time.Time `json:"last_review_at,omitempty"`
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	LastGrade    *int       `json:"last_grade,omitempty"`
}

// marshalPrevStats returns nil for nil stats so the column stays NULL.
func marshalPrevStats(s *domain.StudyStats) ([]byte, error) {
	if s == nil {
		return nil, nil
	}

	j := statsSnapshotJSON{
		EaseFactor:   s.EaseFactor,
		IntervalDays: s.IntervalDays,
		Repetitions:  s.Repetitions,
		LastReviewAt: s.LastReviewAt,
		NextReviewAt: s.NextReviewAt,
	}
	if s.LastGrade != nil {
		g := int(*s.LastGrade)
		j.LastGrade = &g
	}
	return json.Marshal(j)
}
