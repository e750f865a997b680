package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/carden-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDeck creates an empty deck owned by ownerID.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Deck {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	deck := domain.Deck{
		OwnerID:   ownerID,
		Title:     "Deck " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO decks (owner_id, title, created_at, updated_at)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		deck.OwnerID, deck.Title, deck.CreatedAt, deck.UpdatedAt,
	).Scan(&deck.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}

	return deck
}

// SeedCards adds n cards to the deck, in insertion order.
func SeedCards(t *testing.T, pool *pgxpool.Pool, deckID int64, n int) []domain.Card {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cards := make([]domain.Card, 0, n)
	for i := range n {
		c := domain.Card{
			DeckID:    deckID,
			Front:     fmt.Sprintf("front %d", i+1),
			Back:      fmt.Sprintf("back %d", i+1),
			Tags:      []string{"seed"},
			CreatedAt: now,
			UpdatedAt: now,
		}
		err := pool.QueryRow(ctx,
			`INSERT INTO cards (deck_id, front, back, tags, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			c.DeckID, c.Front, c.Back, c.Tags, c.CreatedAt, c.UpdatedAt,
		).Scan(&c.ID)
		if err != nil {
			t.Fatalf("testhelper: SeedCards: %v", err)
		}
		cards = append(cards, c)
	}

	return cards
}

// SeedStats stores review stats for a card, making it due at nextReview.
func SeedStats(t *testing.T, pool *pgxpool.Pool, cardID int64, nextReview time.Time) domain.StudyStats {
	t.Helper()

	reviewed := nextReview.Add(-24 * time.Hour).UTC().Truncate(time.Microsecond)
	next := nextReview.UTC().Truncate(time.Microsecond)
	grade := domain.GradeGood
	stats := domain.StudyStats{
		CardID:       cardID,
		EaseFactor:   domain.DefaultEaseFactor,
		IntervalDays: 1,
		Repetitions:  1,
		LastReviewAt: &reviewed,
		NextReviewAt: &next,
		LastGrade:    &grade,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO card_stats (card_id, ease_factor, interval_days, repetitions, last_review_at, next_review_at, last_grade)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		stats.CardID, stats.EaseFactor, stats.IntervalDays, stats.Repetitions, reviewed, next, int16(grade),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStats: %v", err)
	}

	return stats
}
