// Package card implements the card read side of the card store using
// PostgreSQL: deck listings, due summaries and the due queue.
// Static queries are raw SQL; queries with an optional deck filter are built
// with squirrel.
package card

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/carden-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carden-backend/internal/domain"
)

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new card repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const countByDeckSQL = `
SELECT count(*) FROM cards c
JOIN decks d ON d.id = c.deck_id
WHERE c.deck_id = $1 AND d.owner_id = $2`

const listByDeckSQL = `
SELECT c.id, c.deck_id, c.front, c.back, c.example, c.media_url, c.tags, c.created_at, c.updated_at
FROM cards c
JOIN decks d ON d.id = c.deck_id
WHERE c.deck_id = $1 AND d.owner_id = $2
ORDER BY c.id
LIMIT $3 OFFSET $4`

var cardColumns = []string{
	"c.id", "c.deck_id", "c.front", "c.back", "c.example", "c.media_url", "c.tags", "c.created_at", "c.updated_at",
}

var statsColumns = []string{
	"s.card_id AS stats_card_id", "s.ease_factor", "s.interval_days", "s.repetitions",
	"s.last_review_at", "s.next_review_at", "s.last_grade",
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type cardRow struct {
	ID        int64     `db:"id"`
	DeckID    int64     `db:"deck_id"`
	Front     string    `db:"front"`
	Back      string    `db:"back"`
	Example   *string   `db:"example"`
	MediaURL  *string   `db:"media_url"`
	Tags      []string  `db:"tags"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r cardRow) toDomain() domain.Card {
	return domain.Card{
		ID:        r.ID,
		DeckID:    r.DeckID,
		Front:     r.Front,
		Back:      r.Back,
		Example:   r.Example,
		MediaURL:  r.MediaURL,
		Tags:      r.Tags,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// dueRow is a card LEFT JOINed with its stats; the stats columns are all NULL
// for a card that was never reviewed.
type dueRow struct {
	ID           int64      `db:"id"`
	DeckID       int64      `db:"deck_id"`
	Front        string     `db:"front"`
	Back         string     `db:"back"`
	Example      *string    `db:"example"`
	MediaURL     *string    `db:"media_url"`
	Tags         []string   `db:"tags"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	StatsCardID  *int64     `db:"stats_card_id"`
	EaseFactor   *float64   `db:"ease_factor"`
	IntervalDays *int       `db:"interval_days"`
	Repetitions  *int       `db:"repetitions"`
	LastReviewAt *time.Time `db:"last_review_at"`
	NextReviewAt *time.Time `db:"next_review_at"`
	LastGrade    *int16     `db:"last_grade"`
}

func (r dueRow) toDomain() domain.DueCard {
	dc := domain.DueCard{Card: cardRow{
		ID:        r.ID,
		DeckID:    r.DeckID,
		Front:     r.Front,
		Back:      r.Back,
		Example:   r.Example,
		MediaURL:  r.MediaURL,
		Tags:      r.Tags,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}.toDomain()}
	if r.StatsCardID == nil {
		return dc
	}

	stats := domain.StudyStats{
		CardID:       *r.StatsCardID,
		LastReviewAt: r.LastReviewAt,
		NextReviewAt: r.NextReviewAt,
	}
	if r.EaseFactor != nil {
		stats.EaseFactor = *r.EaseFactor
	}
	if r.IntervalDays != nil {
		stats.IntervalDays = *r.IntervalDays
	}
	if r.Repetitions != nil {
		stats.Repetitions = *r.Repetitions
	}
	if r.LastGrade != nil {
		g := domain.Grade(*r.LastGrade)
		stats.LastGrade = &g
	}
	dc.Stats = &stats
	return dc
}

type summaryRow struct {
	NewCards      int        `db:"new_cards"`
	LearningCards int        `db:"learning_cards"`
	ReviewCards   int        `db:"review_cards"`
	TotalCards    int        `db:"total_cards"`
	NextReviewAt  *time.Time `db:"next_review_at"`
}

// toDomain derives the availability fields. The next due time is only
// reported while nothing is due.
func (r summaryRow) toDomain(now time.Time) domain.DueSummary {
	sum := domain.DueSummary{
		NewCards:      r.NewCards,
		LearningCards: r.LearningCards,
		ReviewCards:   r.ReviewCards,
		TotalCards:    r.TotalCards,
	}
	sum.DueCards = sum.NewCards + sum.LearningCards + sum.ReviewCards
	sum.HasCardsAvailable = sum.DueCards > 0

	if !sum.HasCardsAvailable && r.NextReviewAt != nil {
		next := *r.NextReviewAt
		sum.NextCardAvailableAt = &next
		sum.MinutesUntilNext = int(math.Ceil(next.Sub(now).Minutes()))
		if sum.MinutesUntilNext < 0 {
			sum.MinutesUntilNext = 0
		}
	}
	return sum
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByDeck returns one page of the deck's cards in insertion order. Cards of
// a deck owned by someone else are never returned.
func (r *Repo) ListByDeck(ctx context.Context, ownerID uuid.UUID, deckID int64, page domain.PageRequest) (domain.Page[domain.Card], error) {
	if page.Size <= 0 || page.Page < 0 {
		return domain.Page[domain.Card]{}, domain.NewValidationError("page", "size must be positive and page non-negative")
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countByDeckSQL, deckID, ownerID).Scan(&total); err != nil {
		return domain.Page[domain.Card]{}, postgres.MapError(err, "cards of deck", deckID)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, q, &rows, listByDeckSQL, deckID, ownerID, page.Size, page.Offset()); err != nil {
		return domain.Page[domain.Card]{}, postgres.MapError(err, "cards of deck", deckID)
	}

	cards := make([]domain.Card, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}
	return domain.NewPage(cards, page, total), nil
}

// DueSummary counts the learner's due cards, optionally narrowed to one deck.
func (r *Repo) DueSummary(ctx context.Context, ownerID uuid.UUID, deckID *int64, now time.Time) (domain.DueSummary, error) {
	query := postgres.Builder().
		Select().
		Column("count(*) FILTER (WHERE s.card_id IS NULL) AS new_cards").
		Column(squirrel.Expr("count(*) FILTER (WHERE s.repetitions < 2 AND s.next_review_at <= ?) AS learning_cards", now)).
		Column(squirrel.Expr("count(*) FILTER (WHERE s.repetitions >= 2 AND s.next_review_at <= ?) AS review_cards", now)).
		Column("count(*) AS total_cards").
		Column(squirrel.Expr("min(s.next_review_at) FILTER (WHERE s.next_review_at > ?) AS next_review_at", now)).
		From("cards c").
		Join("decks d ON d.id = c.deck_id").
		LeftJoin("card_stats s ON s.card_id = c.id").
		Where(scope(ownerID, deckID))

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.DueSummary{}, fmt.Errorf("build due summary query: %w", err)
	}

	var row summaryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.DueSummary{}, postgres.MapError(err, "due summary of learner", ownerID)
	}
	return row.toDomain(now), nil
}

// ListDue returns one page of due cards ordered by next review time, oldest
// first, with never-reviewed cards last.
func (r *Repo) ListDue(ctx context.Context, ownerID uuid.UUID, deckID *int64, now time.Time, page domain.PageRequest) (domain.Page[domain.DueCard], error) {
	if page.Size <= 0 || page.Page < 0 {
		return domain.Page[domain.DueCard]{}, domain.NewValidationError("page", "size must be positive and page non-negative")
	}

	filter := squirrel.And{
		scope(ownerID, deckID),
		squirrel.Or{
			squirrel.Eq{"s.card_id": nil},
			squirrel.LtOrEq{"s.next_review_at": now},
		},
	}
	from := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		return b.From("cards c").
			Join("decks d ON d.id = c.deck_id").
			LeftJoin("card_stats s ON s.card_id = c.id").
			Where(filter)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	countSQL, countArgs, err := from(postgres.Builder().Select("count(*)")).ToSql()
	if err != nil {
		return domain.Page[domain.DueCard]{}, fmt.Errorf("build due count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.Page[domain.DueCard]{}, postgres.MapError(err, "due cards of learner", ownerID)
	}

	listSQL, listArgs, err := from(postgres.Builder().Select(cardColumns...).Columns(statsColumns...)).
		OrderBy("s.next_review_at ASC NULLS LAST", "c.id ASC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return domain.Page[domain.DueCard]{}, fmt.Errorf("build due list query: %w", err)
	}

	var rows []dueRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return domain.Page[domain.DueCard]{}, postgres.MapError(err, "due cards of learner", ownerID)
	}

	cards := make([]domain.DueCard, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}
	return domain.NewPage(cards, page, total), nil
}

// scope restricts a query to the learner's cards, and to one deck when deckID is set.
func scope(ownerID uuid.UUID, deckID *int64) squirrel.Sqlizer {
	eq := squirrel.Eq{"d.owner_id": ownerID}
	if deckID != nil {
		eq["c.deck_id"] = *deckID
	}
	return eq
}
