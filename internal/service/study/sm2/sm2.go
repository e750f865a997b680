// Package sm2 implements the SM-2 family interval calculator used by SRS sessions.
// Everything here is pure: no storage, no clock, no logger.
package sm2

import (
	"fmt"
	"math"
	"time"

	"github.com/heartmarshall/carden-backend/internal/domain"
)

const (
	firstInterval  = 1
	secondInterval = 6
)

// Card holds the SM-2 state of a flashcard.
type Card struct {
	Ease        float64
	Interval    int
	Repetitions int
}

// CardFromStats extracts the SM-2 state from persisted stats.
func CardFromStats(s domain.StudyStats) Card {
	return Card{Ease: s.EaseFactor, Interval: s.IntervalDays, Repetitions: s.Repetitions}
}

// Result is the new SM-2 state and the moment the card becomes due again.
type Result struct {
	Ease        float64
	Interval    int
	Repetitions int
	Due         time.Time
}

// Update converts the result into a stats write for a review made at now.
func (r Result) Update(grade domain.Grade, now time.Time, responseTimeMs int64) domain.StatsUpdate {
	return domain.StatsUpdate{
		EaseFactor:     r.Ease,
		IntervalDays:   r.Interval,
		Repetitions:    r.Repetitions,
		NextReviewAt:   r.Due,
		Grade:          grade,
		ReviewedAt:     now,
		ResponseTimeMs: responseTimeMs,
	}
}

// Parameters holds the calculator configuration.
type Parameters struct {
	DefaultEase     float64
	MinEase         float64
	MaxIntervalDays int
}

// DefaultParameters returns the classic SM-2 constants.
func DefaultParameters() Parameters {
	return Parameters{
		DefaultEase:     domain.DefaultEaseFactor,
		MinEase:         domain.MinEaseFactor,
		MaxIntervalDays: 36500,
	}
}

// ComputeNext returns the state of card after it is graded at now.
// An out-of-range grade is rejected before anything is computed.
func ComputeNext(params Parameters, card Card, grade domain.Grade, now time.Time) (Result, error) {
	if !grade.IsValid() {
		return Result{}, fmt.Errorf("compute next interval: grade %d: %w", int(grade), domain.ErrInvalidGrade)
	}
	params = params.normalized()

	ease := card.Ease
	if ease <= 0 {
		ease = params.DefaultEase
	}
	ease = nextEase(params, ease, grade)

	var interval, reps int
	if grade.IsCorrect() {
		switch card.Repetitions {
		case 0:
			interval = firstInterval
		case 1:
			interval = secondInterval
		default:
			interval = int(math.Round(float64(card.Interval) * ease))
		}
		reps = card.Repetitions + 1
	} else {
		// Again and Hard both count as a lapse: relearn from tomorrow.
		interval = firstInterval
		reps = 0
	}

	interval = max(interval, firstInterval)
	if params.MaxIntervalDays > 0 {
		interval = min(interval, params.MaxIntervalDays)
	}

	return Result{
		Ease:        ease,
		Interval:    interval,
		Repetitions: reps,
		Due:         now.AddDate(0, 0, interval),
	}, nil
}

// Next is ComputeNext with DefaultParameters.
func Next(card Card, grade domain.Grade, now time.Time) (Result, error) {
	return ComputeNext(DefaultParameters(), card, grade, now)
}

func nextEase(params Parameters, ease float64, grade domain.Grade) float64 {
	q := float64(domain.GradeEasy - grade)
	e := ease + (0.1 - q*(0.08+q*0.02))
	// All SM-2 deltas are multiples of 0.01; rounding keeps repeated reviews from drifting.
	e = math.Round(e*100) / 100
	return math.Max(params.MinEase, e)
}

func (p Parameters) normalized() Parameters {
	d := DefaultParameters()
	if p.DefaultEase <= 0 {
		p.DefaultEase = d.DefaultEase
	}
	// The floor can be raised but never lowered below the SM-2 minimum.
	p.MinEase = max(p.MinEase, domain.MinEaseFactor)
	p.DefaultEase = max(p.DefaultEase, p.MinEase)
	return p
}
