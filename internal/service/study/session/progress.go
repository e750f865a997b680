// Package session holds the two study-session schedulers: LocalSession, a
// mastery-gated loop over a fixed deck that is never persisted, and
// PracticeSession, which pulls due cards from a CardStore and writes SM-2
// results back after every grade. Both expose their counters through Progress
// so Summarize can produce a summary for either.
package session

import (
	"math"
	"time"

	"github.com/heartmarshall/carden-backend/internal/domain"
)

const (
	KindLocal    = "local"
	KindPractice = "practice"
)

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Counters are the raw session counters the aggregator reads.
type Counters struct {
	Total           int
	Reviewed        int
	Correct         int
	Completed       int
	TotalResponseMs int64
	GradeCounts     *domain.GradeCounts
	StartedAt       time.Time
	FinishedAt      *time.Time
}

// Progress is implemented by snapshots of both session kinds.
type Progress interface {
	Kind() string
	Counters() Counters
}

// Summarize derives the session summary from p. It never mutates anything.
// now is used as the end time while the session is still running.
func Summarize(p Progress, now time.Time) domain.SessionSummary {
	c := p.Counters()

	end := now
	if c.FinishedAt != nil {
		end = *c.FinishedAt
	}
	minutes := end.Sub(c.StartedAt).Milliseconds() / 60000
	if minutes < 0 {
		minutes = 0
	}

	var accuracy int
	var avgSeconds float64
	if c.Reviewed > 0 {
		accuracy = int(math.Round(100 * float64(c.Correct) / float64(c.Reviewed)))
		avgSeconds = float64(c.TotalResponseMs) / float64(c.Reviewed) / 1000
	}

	var completion float64
	if c.Total > 0 {
		completion = 100 * float64(c.Completed) / float64(c.Total)
	}

	var grades *domain.GradeCounts
	if c.GradeCounts != nil {
		gc := *c.GradeCounts
		grades = &gc
	}

	var finished *time.Time
	if c.FinishedAt != nil {
		f := *c.FinishedAt
		finished = &f
	}

	return domain.SessionSummary{
		Kind:                      p.Kind(),
		TotalCards:                c.Total,
		ReviewedCards:             c.Reviewed,
		CorrectCards:              c.Correct,
		CompletedCards:            c.Completed,
		Accuracy:                  accuracy,
		CompletionRate:            completion,
		DurationMinutes:           minutes,
		AverageTimePerCardSeconds: avgSeconds,
		GradeCounts:               grades,
		StartedAt:                 c.StartedAt,
		FinishedAt:                finished,
	}
}

// cloneSummary copies the pointer fields so callers cannot change a cached summary.
func cloneSummary(s domain.SessionSummary) domain.SessionSummary {
	if s.GradeCounts != nil {
		gc := *s.GradeCounts
		s.GradeCounts = &gc
	}
	if s.FinishedAt != nil {
		f := *s.FinishedAt
		s.FinishedAt = &f
	}
	return s
}
