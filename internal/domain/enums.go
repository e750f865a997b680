package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Grade is the learner's self-assessed recall quality for a single review, 0..3.
type Grade int

const (
	GradeAgain Grade = 0
	GradeHard  Grade = 1
	GradeGood  Grade = 2
	GradeEasy  Grade = 3
)

var gradeNames = [...]string{"AGAIN", "HARD", "GOOD", "EASY"}

func (g Grade) String() string {
	if !g.IsValid() {
		return "Grade(" + strconv.Itoa(int(g)) + ")"
	}
	return gradeNames[g]
}

func (g Grade) IsValid() bool { return g >= GradeAgain && g <= GradeEasy }

// IsCorrect reports whether the grade counts as a successful recall.
func (g Grade) IsCorrect() bool { return g >= GradeGood }

// ParseGrade accepts either the numeric form ("0".."3") or the name ("again", "GOOD", ...).
func ParseGrade(s string) (Grade, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		g := Grade(n)
		if !g.IsValid() {
			return 0, fmt.Errorf("grade %d: %w", n, ErrInvalidGrade)
		}
		return g, nil
	}
	for i, name := range gradeNames {
		if strings.EqualFold(name, s) {
			return Grade(i), nil
		}
	}
	return 0, fmt.Errorf("grade %q: %w", s, ErrInvalidGrade)
}

// Difficulty is the two-state rating used by local sessions.
// The zero value means the card has not been rated yet.
type Difficulty string

const (
	DifficultyUnset Difficulty = ""
	DifficultyEasy  Difficulty = "easy"
	DifficultyHard  Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

// IsValid reports whether d is a rating a learner can submit. Unset is not.
func (d Difficulty) IsValid() bool {
	return d == DifficultyEasy || d == DifficultyHard
}

// SessionMode tags a local session.
type SessionMode string

const (
	SessionModeStudy  SessionMode = "study"
	SessionModeReview SessionMode = "review"
)

func (m SessionMode) String() string { return string(m) }

func (m SessionMode) IsValid() bool {
	return m == SessionModeStudy || m == SessionModeReview
}

// PracticeMode is the presentation mode of an SRS session.
type PracticeMode string

const (
	PracticeModeFlip           PracticeMode = "flip"
	PracticeModeTypeAnswer     PracticeMode = "type_answer"
	PracticeModeMultipleChoice PracticeMode = "multiple_choice"
)

func (m PracticeMode) String() string { return string(m) }

func (m PracticeMode) IsValid() bool {
	switch m {
	case PracticeModeFlip, PracticeModeTypeAnswer, PracticeModeMultipleChoice:
		return true
	}
	return false
}

// SessionStatus represents the lifecycle state of a study session.
type SessionStatus string

const (
	SessionStatusNotStarted SessionStatus = "NOT_STARTED"
	SessionStatusActive     SessionStatus = "ACTIVE"
	SessionStatusComplete   SessionStatus = "COMPLETE"
	SessionStatusAbandoned  SessionStatus = "ABANDONED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusNotStarted, SessionStatusActive, SessionStatusComplete, SessionStatusAbandoned:
		return true
	}
	return false
}

// IsFinished reports whether the session can no longer change.
func (s SessionStatus) IsFinished() bool {
	return s == SessionStatusComplete || s == SessionStatusAbandoned
}
