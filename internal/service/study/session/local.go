package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carden-backend/internal/domain"
)

// LocalOptions configures StartLocal. Zero values pick sensible defaults.
type LocalOptions struct {
	Mode    domain.SessionMode
	Shuffle bool
	Rand    *rand.Rand
	Clock   Clock
	Log     *slog.Logger
}

// LocalSession loops over a fixed set of cards until every one is rated easy.
// All methods are safe for concurrent use; mutations are serialized.
type LocalSession struct {
	mu    sync.Mutex
	log   *slog.Logger
	clock Clock

	id        uuid.UUID
	deckID    int64
	deckTitle string
	mode      domain.SessionMode
	status    domain.SessionStatus

	cards       []domain.ClientStudyCard
	index       int
	answerShown bool
	shownAt     time.Time

	studied      []int64
	studiedSet   map[int64]struct{}
	completed    []int64
	completedSet map[int64]struct{}

	ratings         int
	easyRatings     int
	totalResponseMs int64

	startedAt  time.Time
	finishedAt *time.Time
}

// StartLocal begins a local session over cards. It fails with ErrEmptyDeck when cards is empty.
func StartLocal(deckID int64, deckTitle string, cards []domain.Card, opts LocalOptions) (*LocalSession, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("start local session for deck %d: %w", deckID, domain.ErrEmptyDeck)
	}
	if opts.Mode == "" {
		opts.Mode = domain.SessionModeStudy
	}
	if !opts.Mode.IsValid() {
		return nil, domain.NewValidationError("mode", "must be study or review")
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	wrapped := make([]domain.ClientStudyCard, len(cards))
	for i, c := range cards {
		wrapped[i] = domain.NewClientStudyCard(c)
	}
	if opts.Shuffle {
		shuffle := rand.Shuffle
		if opts.Rand != nil {
			shuffle = opts.Rand.Shuffle
		}
		shuffle(len(wrapped), func(i, j int) { wrapped[i], wrapped[j] = wrapped[j], wrapped[i] })
	}

	now := opts.Clock.Now()
	s := &LocalSession{
		clock:        opts.Clock,
		id:           uuid.New(),
		deckID:       deckID,
		deckTitle:    deckTitle,
		mode:         opts.Mode,
		status:       domain.SessionStatusActive,
		cards:        wrapped,
		shownAt:      now,
		studiedSet:   make(map[int64]struct{}, len(cards)),
		completedSet: make(map[int64]struct{}, len(cards)),
		startedAt:    now,
	}
	s.log = opts.Log.With(slog.String("session_id", s.id.String()), slog.Int64("deck_id", deckID))

	return s, nil
}

// ID returns the session identifier.
func (s *LocalSession) ID() uuid.UUID { return s.id }

// Status returns the current lifecycle state.
func (s *LocalSession) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// ShowAnswer flips the current card. It is a no-op unless the session is active
// and the answer is still hidden. It reports whether anything changed.
func (s *LocalSession) ShowAnswer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.SessionStatusActive || s.answerShown {
		return false
	}
	s.answerShown = true
	return true
}

// RateCard records a rating for the current card and advances to the next
// card that is not yet easy. The session completes once every card is easy.
// Without an active session and a current card nothing changes and
// ErrNoCurrentCard is returned.
func (s *LocalSession) RateCard(d domain.Difficulty) (LocalSnapshot, error) {
	if !d.IsValid() {
		return LocalSnapshot{}, domain.NewValidationError("difficulty", "must be easy or hard")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.SessionStatusActive || s.index < 0 || s.index >= len(s.cards) {
		return s.snapshotLocked(), domain.ErrNoCurrentCard
	}

	now := s.clock.Now()
	card := &s.cards[s.index]

	card.Difficulty = d
	card.TimesStudied++
	stamp := now
	card.LastStudiedAt = &stamp

	s.ratings++
	if elapsed := now.Sub(s.shownAt).Milliseconds(); elapsed > 0 {
		s.totalResponseMs += elapsed
	}

	if _, ok := s.studiedSet[card.ID]; !ok {
		s.studiedSet[card.ID] = struct{}{}
		s.studied = append(s.studied, card.ID)
	}

	if d == domain.DifficultyEasy {
		s.easyRatings++
		card.NeedsReview = false
		if _, ok := s.completedSet[card.ID]; !ok {
			s.completedSet[card.ID] = struct{}{}
			s.completed = append(s.completed, card.ID)
		}
	}

	if s.easyCountLocked() >= len(s.cards) {
		s.finishLocked(now)
		return s.snapshotLocked(), nil
	}

	next, ok := s.nextUnmasteredLocked()
	if !ok {
		s.log.Warn("soft invariant violation: no unmastered card found before mastery gate",
			slog.Int("easy", s.easyCountLocked()),
			slog.Int("total", len(s.cards)),
		)
		s.finishLocked(now)
		return s.snapshotLocked(), nil
	}

	s.index = next
	s.answerShown = false
	s.shownAt = now

	return s.snapshotLocked(), nil
}

// Reset abandons the session and discards its cards.
func (s *LocalSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = domain.SessionStatusNotStarted
	s.cards = nil
	s.index = 0
	s.answerShown = false
	s.studied, s.completed = nil, nil
	clear(s.studiedSet)
	clear(s.completedSet)
}

// Snapshot returns a copy of the session state.
func (s *LocalSession) Snapshot() LocalSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Summary computes the aggregate statistics for the session so far.
func (s *LocalSession) Summary() domain.SessionSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summarize(s.snapshotLocked(), s.clock.Now())
}

// nextUnmasteredLocked scans circularly from index+1 for a card not rated easy.
func (s *LocalSession) nextUnmasteredLocked() (int, bool) {
	for i := s.index + 1; i < len(s.cards); i++ {
		if s.cards[i].Difficulty != domain.DifficultyEasy {
			return i, true
		}
	}
	for i := 0; i < s.index; i++ {
		if s.cards[i].Difficulty != domain.DifficultyEasy {
			return i, true
		}
	}
	return 0, false
}

func (s *LocalSession) easyCountLocked() int {
	n := 0
	for i := range s.cards {
		if s.cards[i].Difficulty == domain.DifficultyEasy {
			n++
		}
	}
	return n
}

func (s *LocalSession) finishLocked(now time.Time) {
	s.status = domain.SessionStatusComplete
	s.answerShown = false
	s.finishedAt = &now
}

func (s *LocalSession) snapshotLocked() LocalSnapshot {
	snap := LocalSnapshot{
		ID:             s.id,
		DeckID:         s.deckID,
		DeckTitle:      s.deckTitle,
		Mode:           s.mode,
		Status:         s.status,
		Cards:          slices.Clone(s.cards),
		CurrentIndex:   s.index,
		AnswerShown:    s.answerShown,
		StudiedCards:   slices.Clone(s.studied),
		CompletedCards: slices.Clone(s.completed),
		Ratings:        s.ratings,
		EasyRatings:    s.easyRatings,
		ResponseMs:     s.totalResponseMs,
		StartedAt:      s.startedAt,
	}
	if s.finishedAt != nil {
		f := *s.finishedAt
		snap.FinishedAt = &f
	}
	if s.status == domain.SessionStatusActive && s.index < len(s.cards) {
		c := snap.Cards[s.index]
		snap.CurrentCard = &c
	}
	return snap
}

// LocalSnapshot is a point-in-time copy of a LocalSession.
type LocalSnapshot struct {
	ID             uuid.UUID
	DeckID         int64
	DeckTitle      string
	Mode           domain.SessionMode
	Status         domain.SessionStatus
	Cards          []domain.ClientStudyCard
	CurrentIndex   int
	CurrentCard    *domain.ClientStudyCard
	AnswerShown    bool
	StudiedCards   []int64
	CompletedCards []int64
	Ratings        int
	EasyRatings    int
	ResponseMs     int64
	StartedAt      time.Time
	FinishedAt     *time.Time
}

// TotalCards is the number of cards in the session.
func (s LocalSnapshot) TotalCards() int { return len(s.Cards) }

// Kind implements Progress.
func (s LocalSnapshot) Kind() string { return KindLocal }

// Counters implements Progress. Every rating counts as a review and easy ratings count as correct.
func (s LocalSnapshot) Counters() Counters {
	return Counters{
		Total:           len(s.Cards),
		Reviewed:        s.Ratings,
		Correct:         s.EasyRatings,
		Completed:       len(s.CompletedCards),
		TotalResponseMs: s.ResponseMs,
		StartedAt:       s.StartedAt,
		FinishedAt:      s.FinishedAt,
	}
}
