// Package practice implements the practice history repository using PostgreSQL.
// Finished SRS sessions are stored with their summary as JSONB.
package practice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carden-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carden-backend/internal/domain"
)

// Repo provides practice history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new practice history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const createSQL = `
INSERT INTO practice_sessions (id, learner_id, deck_id, mode, summary, started_at, finished_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const countByLearnerSQL = `SELECT count(*) FROM practice_sessions WHERE learner_id = $1`

const listByLearnerSQL = `
SELECT id, learner_id, deck_id, mode, summary, started_at, finished_at
FROM practice_sessions
WHERE learner_id = $1
ORDER BY finished_at DESC, id
LIMIT $2 OFFSET $3`

const deleteOlderThanSQL = `DELETE FROM practice_sessions WHERE finished_at < $1`

type recordRow struct {
	ID         uuid.UUID `db:"id"`
	LearnerID  uuid.UUID `db:"learner_id"`
	DeckID     *int64    `db:"deck_id"`
	Mode       string    `db:"mode"`
	Summary    []byte    `db:"summary"`
	StartedAt  time.Time `db:"started_at"`
	FinishedAt time.Time `db:"finished_at"`
}

func (r recordRow) toDomain() (domain.PracticeRecord, error) {
	rec := domain.PracticeRecord{
		ID:         r.ID,
		LearnerID:  r.LearnerID,
		DeckID:     r.DeckID,
		Mode:       domain.PracticeMode(r.Mode),
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
	}
	if err := json.Unmarshal(r.Summary, &rec.Summary); err != nil {
		return domain.PracticeRecord{}, fmt.Errorf("unmarshal summary of practice %s: %w", r.ID, err)
	}
	return rec, nil
}

// Create stores a finished session. Storing the same id twice yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rec *domain.PracticeRecord) error {
	summary, err := json.Marshal(rec.Summary)
	if err != nil {
		return fmt.Errorf("marshal practice summary: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		rec.ID, rec.LearnerID, rec.DeckID, string(rec.Mode), summary, rec.StartedAt, rec.FinishedAt,
	)
	if err != nil {
		return postgres.MapError(err, "practice session", rec.ID)
	}
	return nil
}

// ListByLearner returns one page of the learner's history, newest first, and
// the total number of stored sessions.
func (r *Repo) ListByLearner(ctx context.Context, learnerID uuid.UUID, limit, offset int) ([]domain.PracticeRecord, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countByLearnerSQL, learnerID).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "practice history of learner", learnerID)
	}
	if total == 0 {
		return []domain.PracticeRecord{}, 0, nil
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, q, &rows, listByLearnerSQL, learnerID, limit, offset); err != nil {
		return nil, 0, postgres.MapError(err, "practice history of learner", learnerID)
	}

	records := make([]domain.PracticeRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, nil
}

// DeleteOlderThan removes sessions finished before the cutoff and returns how
// many were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteOlderThanSQL, before)
	if err != nil {
		return 0, postgres.MapError(err, "practice sessions before", before.Format(time.RFC3339))
	}
	return tag.RowsAffected(), nil
}
