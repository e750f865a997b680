package study

import (
	"github.com/heartmarshall/carden-backend/internal/domain"
)

// StartLocalInput holds the parameters for starting a local session.
type StartLocalInput struct {
	DeckID  int64
	Shuffle *bool
	Mode    domain.SessionMode
}

// Validate checks all fields and collects all errors.
func (i *StartLocalInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID <= 0 {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if i.Mode != "" && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be study or review"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RateCardInput holds the rating for the current local card.
type RateCardInput struct {
	Difficulty domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i *RateCardInput) Validate() error {
	if !i.Difficulty.IsValid() {
		return domain.NewValidationError("difficulty", "must be easy or hard")
	}
	return nil
}

// GetDueInput optionally narrows the due query to one deck.
type GetDueInput struct {
	DeckID *int64
}

// Validate checks all fields and collects all errors.
func (i *GetDueInput) Validate() error {
	if i.DeckID != nil && *i.DeckID <= 0 {
		return domain.NewValidationError("deck_id", "must be positive")
	}
	return nil
}

// StartPracticeInput holds the parameters for starting an SRS practice session.
type StartPracticeInput struct {
	DeckID *int64
	Mode   domain.PracticeMode
}

// Validate checks all fields and collects all errors.
func (i *StartPracticeInput) Validate() error {
	var errs []domain.FieldError

	if i.DeckID != nil && *i.DeckID <= 0 {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "must be positive"})
	}
	if i.Mode != "" && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be flip, type_answer or multiple_choice"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SubmitReviewInput holds the grade for the current practice card.
type SubmitReviewInput struct {
	Grade          domain.Grade
	ResponseTimeMs *int64
}

// Validate checks all fields and collects all errors.
// An out-of-range grade is reported as ErrInvalidGrade.
func (i *SubmitReviewInput) Validate() error {
	if !i.Grade.IsValid() {
		return domain.ErrInvalidGrade
	}
	if i.ResponseTimeMs != nil && (*i.ResponseTimeMs < 0 || *i.ResponseTimeMs > 600_000) {
		return domain.NewValidationError("response_time_ms", "must be between 0 and 600000")
	}
	return nil
}

// ListHistoryInput holds pagination for practice history.
type ListHistoryInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListHistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
