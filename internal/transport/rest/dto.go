package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carden-backend/internal/domain"
	"github.com/heartmarshall/carden-backend/internal/service/study/session"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type startLocalRequest struct {
	DeckID  int64  `json:"deckId"`
	Shuffle *bool  `json:"shuffle,omitempty"`
	Mode    string `json:"mode,omitempty"`
}

type rateCardRequest struct {
	Difficulty string `json:"difficulty"`
}

type startPracticeRequest struct {
	DeckID *int64 `json:"deckId,omitempty"`
	Mode   string `json:"mode,omitempty"`
}

type submitReviewRequest struct {
	Grade          *gradeValue `json:"grade"`
	ResponseTimeMs *int64      `json:"responseTimeMs,omitempty"`
}

// gradeValue accepts a grade as a number (2) or a name ("GOOD", "good").
type gradeValue domain.Grade

func (g *gradeValue) UnmarshalJSON(data []byte) error {
	raw := string(bytes.TrimSpace(data))
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}
	parsed, err := domain.ParseGrade(raw)
	if err != nil {
		return err
	}
	*g = gradeValue(parsed)
	return nil
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type cardResponse struct {
	ID       int64    `json:"id"`
	DeckID   int64    `json:"deckId"`
	Front    string   `json:"front"`
	Back     string   `json:"back"`
	Example  *string  `json:"example,omitempty"`
	MediaURL *string  `json:"mediaUrl,omitempty"`
	Tags     []string `json:"tags"`
}

func toCardResponse(c domain.Card) cardResponse {
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	return cardResponse{
		ID:       c.ID,
		DeckID:   c.DeckID,
		Front:    c.Front,
		Back:     c.Back,
		Example:  c.Example,
		MediaURL: c.MediaURL,
		Tags:     tags,
	}
}

type statsResponse struct {
	EaseFactor   float64    `json:"easeFactor"`
	IntervalDays int        `json:"intervalDays"`
	Repetitions  int        `json:"repetitions"`
	LastReviewAt *time.Time `json:"lastReviewAt,omitempty"`
	NextReviewAt *time.Time `json:"nextReviewAt,omitempty"`
	LastGrade    *int       `json:"lastGrade,omitempty"`
}

func toStatsResponse(s *domain.StudyStats) *statsResponse {
	if s == nil {
		return nil
	}
	resp := &statsResponse{
		EaseFactor:   s.EaseFactor,
		IntervalDays: s.IntervalDays,
		Repetitions:  s.Repetitions,
		LastReviewAt: s.LastReviewAt,
		NextReviewAt: s.NextReviewAt,
	}
	if s.LastGrade != nil {
		g := int(*s.LastGrade)
		resp.LastGrade = &g
	}
	return resp
}

type studyCardResponse struct {
	cardResponse
	TimesStudied  int        `json:"timesStudied"`
	Difficulty    string     `json:"difficulty,omitempty"`
	NeedsReview   bool       `json:"needsReview"`
	LastStudiedAt *time.Time `json:"lastStudiedAt,omitempty"`
}

func toStudyCardResponse(c domain.ClientStudyCard) studyCardResponse {
	return studyCardResponse{
		cardResponse:  toCardResponse(c.Card),
		TimesStudied:  c.TimesStudied,
		Difficulty:    c.Difficulty.String(),
		NeedsReview:   c.NeedsReview,
		LastStudiedAt: c.LastStudiedAt,
	}
}

type localSessionResponse struct {
	ID             uuid.UUID           `json:"id"`
	DeckID         int64               `json:"deckId"`
	DeckTitle      string              `json:"deckTitle"`
	Mode           string              `json:"mode"`
	Status         string              `json:"status"`
	TotalCards     int                 `json:"totalCards"`
	CurrentIndex   int                 `json:"currentIndex"`
	CurrentCard    *studyCardResponse  `json:"currentCard"`
	AnswerShown    bool                `json:"answerShown"`
	Cards          []studyCardResponse `json:"cards"`
	StudiedCards   []int64             `json:"studiedCards"`
	CompletedCards []int64             `json:"completedCards"`
	StartedAt      time.Time           `json:"startedAt"`
	FinishedAt     *time.Time          `json:"finishedAt,omitempty"`
}

func toLocalSessionResponse(s session.LocalSnapshot) localSessionResponse {
	cards := make([]studyCardResponse, len(s.Cards))
	for i, c := range s.Cards {
		cards[i] = toStudyCardResponse(c)
	}
	resp := localSessionResponse{
		ID:             s.ID,
		DeckID:         s.DeckID,
		DeckTitle:      s.DeckTitle,
		Mode:           s.Mode.String(),
		Status:         s.Status.String(),
		TotalCards:     s.TotalCards(),
		CurrentIndex:   s.CurrentIndex,
		AnswerShown:    s.AnswerShown,
		Cards:          cards,
		StudiedCards:   nonNilIDs(s.StudiedCards),
		CompletedCards: nonNilIDs(s.CompletedCards),
		StartedAt:      s.StartedAt,
		FinishedAt:     s.FinishedAt,
	}
	if s.CurrentCard != nil {
		c := toStudyCardResponse(*s.CurrentCard)
		resp.CurrentCard = &c
	}
	return resp
}

type practiceCardResponse struct {
	Card        cardResponse   `json:"card"`
	Stats       *statsResponse `json:"stats,omitempty"`
	ShownAt     time.Time      `json:"shownAt"`
	Grade       *int           `json:"grade,omitempty"`
	Correct     bool           `json:"correct"`
	TimeSpentMs int64          `json:"timeSpentMs"`
	NewStats    *statsResponse `json:"newStats,omitempty"`
}

func toPracticeCardResponse(c session.PracticeCard) practiceCardResponse {
	resp := practiceCardResponse{
		Card:        toCardResponse(c.Card),
		Stats:       toStatsResponse(c.Stats),
		ShownAt:     c.ShownAt,
		Correct:     c.Correct,
		TimeSpentMs: c.TimeSpentMs,
		NewStats:    toStatsResponse(c.NewStats),
	}
	if c.Grade != nil {
		g := int(*c.Grade)
		resp.Grade = &g
	}
	return resp
}

type practiceSessionResponse struct {
	ID              uuid.UUID              `json:"id"`
	DeckID          *int64                 `json:"deckId,omitempty"`
	Mode            string                 `json:"mode"`
	Status          string                 `json:"status"`
	Current         *practiceCardResponse  `json:"current"`
	Reviewed        []practiceCardResponse `json:"reviewed"`
	Remaining       int                    `json:"remaining"`
	TotalCards      int                    `json:"totalCards"`
	CorrectCount    int                    `json:"correctCount"`
	GradeCounts     domain.GradeCounts     `json:"gradeCounts"`
	TotalResponseMs int64                  `json:"totalResponseMs"`
	ReviewInFlight  bool                   `json:"reviewInFlight"`
	StartedAt       time.Time              `json:"startedAt"`
	FinishedAt      *time.Time             `json:"finishedAt,omitempty"`
}

func toPracticeSessionResponse(s session.PracticeSnapshot) practiceSessionResponse {
	reviewed := make([]practiceCardResponse, len(s.Reviewed))
	for i, c := range s.Reviewed {
		reviewed[i] = toPracticeCardResponse(c)
	}
	resp := practiceSessionResponse{
		ID:              s.ID,
		DeckID:          s.DeckID,
		Mode:            s.Mode.String(),
		Status:          s.Status.String(),
		Reviewed:        reviewed,
		Remaining:       s.Remaining,
		TotalCards:      s.TotalCards,
		CorrectCount:    s.CorrectCount,
		GradeCounts:     s.GradeCounts,
		TotalResponseMs: s.TotalResponseMs,
		ReviewInFlight:  s.ReviewInFlight,
		StartedAt:       s.StartedAt,
		FinishedAt:      s.FinishedAt,
	}
	if s.Current != nil {
		c := toPracticeCardResponse(*s.Current)
		resp.Current = &c
	}
	return resp
}

type dueResponse struct {
	DueCards            int        `json:"dueCards"`
	NewCards            int        `json:"newCards"`
	LearningCards       int        `json:"learningCards"`
	ReviewCards         int        `json:"reviewCards"`
	TotalCards          int        `json:"totalCards"`
	HasCardsAvailable   bool       `json:"hasCardsAvailable"`
	NextCardAvailableAt *time.Time `json:"nextCardAvailableAt,omitempty"`
	MinutesUntilNext    int        `json:"minutesUntilNext"`
}

func toDueResponse(d domain.DueSummary) dueResponse {
	return dueResponse{
		DueCards:            d.DueCards,
		NewCards:            d.NewCards,
		LearningCards:       d.LearningCards,
		ReviewCards:         d.ReviewCards,
		TotalCards:          d.TotalCards,
		HasCardsAvailable:   d.HasCardsAvailable,
		NextCardAvailableAt: d.NextCardAvailableAt,
		MinutesUntilNext:    d.MinutesUntilNext,
	}
}

type startPracticeResponse struct {
	Session      *practiceSessionResponse `json:"session"`
	Availability dueResponse              `json:"availability"`
}

type nextCardResponse struct {
	Card    *practiceCardResponse   `json:"card"`
	Session practiceSessionResponse `json:"session"`
}

type practiceRecordResponse struct {
	ID         uuid.UUID             `json:"id"`
	DeckID     *int64                `json:"deckId,omitempty"`
	Mode       string                `json:"mode"`
	Summary    domain.SessionSummary `json:"summary"`
	StartedAt  time.Time             `json:"startedAt"`
	FinishedAt time.Time             `json:"finishedAt"`
}

type historyResponse struct {
	Items  []practiceRecordResponse `json:"items"`
	Total  int                      `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

func toHistoryResponse(records []domain.PracticeRecord, total, limit, offset int) historyResponse {
	items := make([]practiceRecordResponse, len(records))
	for i, r := range records {
		items[i] = practiceRecordResponse{
			ID:         r.ID,
			DeckID:     r.DeckID,
			Mode:       r.Mode.String(),
			Summary:    r.Summary,
			StartedAt:  r.StartedAt,
			FinishedAt: r.FinishedAt,
		}
	}
	return historyResponse{Items: items, Total: total, Limit: limit, Offset: offset}
}

func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
