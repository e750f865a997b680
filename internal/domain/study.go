package domain

import (
	"time"

	"github.com/google/uuid"
)

// DueSummary describes what is available for review right now. DueCards is
// the sum of NewCards, LearningCards and ReviewCards; TotalCards counts every
// card in scope whether due or not.
// When nothing is due, HasCardsAvailable is false and NextCardAvailableAt / MinutesUntilNext
// tell when the earliest card becomes due. This is data, not an error.
type DueSummary struct {
	DueCards            int
	NewCards            int
	LearningCards       int
	ReviewCards         int
	TotalCards          int
	HasCardsAvailable   bool
	NextCardAvailableAt *time.Time
	MinutesUntilNext    int
}

// GradeCounts holds the number of reviews per grade.
type GradeCounts struct {
	Again int `json:"again"`
	Hard  int `json:"hard"`
	Good  int `json:"good"`
	Easy  int `json:"easy"`
}

// Inc increments the counter for g. Invalid grades are ignored.
func (c *GradeCounts) Inc(g Grade) {
	switch g {
	case GradeAgain:
		c.Again++
	case GradeHard:
		c.Hard++
	case GradeGood:
		c.Good++
	case GradeEasy:
		c.Easy++
	}
}

// Total returns the number of counted reviews.
func (c GradeCounts) Total() int { return c.Again + c.Hard + c.Good + c.Easy }

// SessionSummary is the read-only result computed from a session's counters.
type SessionSummary struct {
	Kind                      string       `json:"kind"`
	TotalCards                int          `json:"totalCards"`
	ReviewedCards             int          `json:"reviewedCards"`
	CorrectCards              int          `json:"correctCards"`
	CompletedCards            int          `json:"completedCards"`
	Accuracy                  int          `json:"accuracy"`
	CompletionRate            float64      `json:"completionRate"`
	DurationMinutes           int64        `json:"durationMinutes"`
	AverageTimePerCardSeconds float64      `json:"averageTimePerCardSeconds"`
	GradeCounts               *GradeCounts `json:"gradeCounts,omitempty"`
	StartedAt                 time.Time    `json:"startedAt"`
	FinishedAt                *time.Time   `json:"finishedAt,omitempty"`
}

// ReviewLog records a single persisted review together with the stats it replaced.
type ReviewLog struct {
	ID             uuid.UUID
	CardID         int64
	LearnerID      uuid.UUID
	Grade          Grade
	PrevStats      *StudyStats
	ResponseTimeMs int64
	ReviewedAt     time.Time
}

// PracticeRecord is a finished SRS session kept as history.
type PracticeRecord struct {
	ID         uuid.UUID
	LearnerID  uuid.UUID
	DeckID     *int64
	Mode       PracticeMode
	Summary    SessionSummary
	StartedAt  time.Time
	FinishedAt time.Time
}

// PageRequest selects one page of a listing. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the row offset of the page.
func (p PageRequest) Offset() int { return p.Page * p.Size }

// Page is one page of a paginated listing.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int
	TotalPages    int
}

// NewPage builds a page and derives TotalPages.
func NewPage[T any](content []T, req PageRequest, total int) Page[T] {
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// Last reports whether there are no pages after this one.
func (p Page[T]) Last() bool { return p.Page+1 >= p.TotalPages }
