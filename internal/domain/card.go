package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultEaseFactor is the ease a card starts with before its first review.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the lowest ease a card can reach.
	MinEaseFactor = 1.3
)

// Deck groups cards owned by a single learner.
type Deck struct {
	ID        int64
	OwnerID   uuid.UUID
	Title     string
	CardCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Card is a flashcard. Content is opaque to the scheduler.
type Card struct {
	ID        int64
	DeckID    int64
	Front     string
	Back      string
	Example   *string
	MediaURL  *string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StudyStats is the persisted spaced-repetition state of a card.
// It is created on the first review and only ever changed through the interval calculator.
type StudyStats struct {
	CardID       int64
	EaseFactor   float64
	IntervalDays int
	Repetitions  int
	LastReviewAt *time.Time
	NextReviewAt *time.Time
	LastGrade    *Grade
}

// DefaultStudyStats returns the stats of a never-reviewed card.
func DefaultStudyStats(cardID int64) StudyStats {
	return StudyStats{
		CardID:     cardID,
		EaseFactor: DefaultEaseFactor,
	}
}

// IsNew reports whether the card has never been successfully reviewed.
func (s StudyStats) IsNew() bool { return s.LastReviewAt == nil }

// StatsUpdate is the write payload for a card's stats: the calculator output plus
// the grade that produced it.
type StatsUpdate struct {
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	NextReviewAt   time.Time
	Grade          Grade
	ReviewedAt     time.Time
	ResponseTimeMs int64
}

// Apply returns the stats that result from persisting u.
func (u StatsUpdate) Apply(cardID int64) StudyStats {
	reviewed := u.ReviewedAt
	next := u.NextReviewAt
	grade := u.Grade
	return StudyStats{
		CardID:       cardID,
		EaseFactor:   u.EaseFactor,
		IntervalDays: u.IntervalDays,
		Repetitions:  u.Repetitions,
		LastReviewAt: &reviewed,
		NextReviewAt: &next,
		LastGrade:    &grade,
	}
}

// DueCard is a card returned by a due query, with its stats when it has any.
type DueCard struct {
	Card
	Stats *StudyStats
}

// StatsOrDefault returns the card's stats, defaulting for never-reviewed cards.
func (c DueCard) StatsOrDefault() StudyStats {
	if c.Stats == nil {
		return DefaultStudyStats(c.ID)
	}
	return *c.Stats
}

// ClientStudyCard is a card wrapped with the transient state of a local session.
// It is never persisted.
type ClientStudyCard struct {
	Card
	TimesStudied  int
	Difficulty    Difficulty
	NeedsReview   bool
	LastStudiedAt *time.Time
}

// NewClientStudyCard wraps c for a fresh local session.
func NewClientStudyCard(c Card) ClientStudyCard {
	return ClientStudyCard{Card: c, NeedsReview: true}
}
