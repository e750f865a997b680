// Package deck implements the Deck repository using PostgreSQL.
package deck

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carden-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carden-backend/internal/domain"
)

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new deck repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getByIDSQL = `
SELECT d.id, d.owner_id, d.title,
       (SELECT count(*) FROM cards c WHERE c.deck_id = d.id) AS card_count,
       d.created_at, d.updated_at
FROM decks d
WHERE d.id = $1 AND d.owner_id = $2`

type deckRow struct {
	ID        int64     `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Title     string    `db:"title"`
	CardCount int       `db:"card_count"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r deckRow) toDomain() domain.Deck {
	return domain.Deck{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		CardCount: r.CardCount,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetByID returns the deck if it belongs to ownerID. A deck owned by someone
// else is reported as not found.
func (r *Repo) GetByID(ctx context.Context, ownerID uuid.UUID, deckID int64) (*domain.Deck, error) {
	var row deckRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, deckID, ownerID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("deck %d: %w", deckID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "deck", deckID)
	}

	d := row.toDomain()
	return &d, nil
}
