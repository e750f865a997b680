package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carden-backend/internal/domain"
	"github.com/heartmarshall/carden-backend/internal/service/study/sm2"
)

const defaultBatchSize = 20

// CardStore is the storage a PracticeSession reads due cards from and writes stats to.
type CardStore interface {
	DueSummary(ctx context.Context, deckID *int64, now time.Time) (domain.DueSummary, error)
	ListDue(ctx context.Context, deckID *int64, now time.Time, page domain.PageRequest) (domain.Page[domain.DueCard], error)
	SaveStats(ctx context.Context, cardID int64, upd domain.StatsUpdate) (domain.StudyStats, error)
}

// PracticeOptions configures StartPractice. Zero values pick sensible defaults.
type PracticeOptions struct {
	Mode   domain.PracticeMode
	DeckID *int64
	// BatchSize is the page size used when pulling due cards.
	BatchSize int
	// MaxCards caps the number of reviews in one session; 0 means unlimited.
	MaxCards int
	// ImminentWindow lets a session start when nothing is due yet but a card
	// becomes due within the window.
	ImminentWindow time.Duration
	Params         sm2.Parameters
	Clock          Clock
	Log            *slog.Logger
}

// PracticeCard is a due card presented in a practice session with its outcome.
type PracticeCard struct {
	domain.DueCard
	ShownAt     time.Time
	Grade       *domain.Grade
	Correct     bool
	TimeSpentMs int64
	NewStats    *domain.StudyStats
}

// PracticeSession pulls due cards one at a time and persists an SM-2 update for
// every grade. A card is reviewed at most once per session.
type PracticeSession struct {
	mu    sync.Mutex
	store CardStore
	opts  PracticeOptions
	log   *slog.Logger
	clock Clock

	id     uuid.UUID
	status domain.SessionStatus

	batch    []domain.DueCard
	current  *PracticeCard
	loaded   map[int64]struct{}
	dropped  int
	reviewed []PracticeCard
	inFlight bool

	total           int
	correct         int
	grades          domain.GradeCounts
	totalResponseMs int64

	startedAt  time.Time
	finishedAt *time.Time
	summary    *domain.SessionSummary
}

// StartPractice queries the store for due cards and opens a session.
//
// When cards exist but none is due now or within the imminent window, it returns
// a nil session with the availability summary and no error. When the store has
// no candidate cards at all it fails with ErrNoCardsDue.
func StartPractice(ctx context.Context, store CardStore, opts PracticeOptions) (*PracticeSession, domain.DueSummary, error) {
	if opts.Mode == "" {
		opts.Mode = domain.PracticeModeFlip
	}
	if !opts.Mode.IsValid() {
		return nil, domain.DueSummary{}, domain.NewValidationError("mode", "must be flip, type_answer or multiple_choice")
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	now := opts.Clock.Now()
	summary, err := store.DueSummary(ctx, opts.DeckID, now)
	if err != nil {
		return nil, domain.DueSummary{}, domain.Retryable("fetch due summary", err)
	}

	if summary.DueCards == 0 {
		if summary.NextCardAvailableAt == nil {
			return nil, summary, fmt.Errorf("start practice: %w", domain.ErrNoCardsDue)
		}
		if summary.NextCardAvailableAt.Sub(now) > opts.ImminentWindow {
			return nil, summary, nil
		}
	}

	s := &PracticeSession{
		store:     store,
		opts:      opts,
		clock:     opts.Clock,
		id:        uuid.New(),
		status:    domain.SessionStatusActive,
		loaded:    make(map[int64]struct{}),
		startedAt: now,
	}
	s.log = opts.Log.With(slog.String("session_id", s.id.String()))
	s.total = s.capTotal(summary.DueCards)

	if summary.DueCards > 0 {
		page, err := store.ListDue(ctx, opts.DeckID, now, domain.PageRequest{Page: 0, Size: opts.BatchSize})
		if err != nil {
			return nil, summary, domain.Retryable("fetch due cards", err)
		}
		s.enqueueLocked(page.Content)
	}

	return s, summary, nil
}

// ID returns the session identifier.
func (s *PracticeSession) ID() uuid.UUID { return s.id }

// Status returns the current lifecycle state.
func (s *PracticeSession) Status() domain.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// NextCard returns the card to show. An occupied slot is returned as is.
// When the batch is exhausted the store is queried once more; if no unseen
// card is due the session completes and NextCard returns nil. While the next
// card is only imminently due the session stays active and NextCard returns nil.
func (s *PracticeSession) NextCard(ctx context.Context) (*PracticeCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return nil, domain.ErrReviewInFlight
	}
	switch s.status {
	case domain.SessionStatusActive:
	case domain.SessionStatusComplete:
		return nil, nil
	default:
		return nil, domain.ErrSessionNotActive
	}

	if s.current != nil {
		c := s.copyCurrentLocked()
		return &c, nil
	}

	if s.opts.MaxCards > 0 && len(s.reviewed) >= s.opts.MaxCards {
		s.finishLocked(s.clock.Now())
		return nil, nil
	}

	if len(s.batch) == 0 {
		waiting, err := s.refillLocked(ctx)
		if err != nil {
			return nil, err
		}
		if len(s.batch) == 0 {
			if !waiting {
				s.finishLocked(s.clock.Now())
			}
			return nil, nil
		}
	}

	next := s.batch[0]
	s.batch = s.batch[1:]
	s.current = &PracticeCard{DueCard: next, ShownAt: s.clock.Now()}

	c := s.copyCurrentLocked()
	return &c, nil
}

// refillLocked re-queries the store once. It reports whether the session
// should wait for an imminently due card instead of completing.
func (s *PracticeSession) refillLocked(ctx context.Context) (bool, error) {
	now := s.clock.Now()
	summary, err := s.store.DueSummary(ctx, s.opts.DeckID, now)
	if err != nil {
		return false, domain.Retryable("fetch due summary", err)
	}

	if summary.DueCards > 0 {
		page, err := s.store.ListDue(ctx, s.opts.DeckID, now, domain.PageRequest{Page: 0, Size: s.opts.BatchSize + len(s.loaded)})
		if err != nil {
			return false, domain.Retryable("fetch due cards", err)
		}
		added := s.enqueueLocked(page.Content)
		if added > 0 {
			s.log.DebugContext(ctx, "practice batch refilled", slog.Int("added", added))
			return false, nil
		}
	}

	waiting := len(s.reviewed) == 0 &&
		summary.NextCardAvailableAt != nil &&
		summary.NextCardAvailableAt.Sub(now) <= s.opts.ImminentWindow
	return waiting, nil
}

// enqueueLocked appends cards not yet seen in this session and returns how many were added.
func (s *PracticeSession) enqueueLocked(cards []domain.DueCard) int {
	added := 0
	for _, c := range cards {
		if _, seen := s.loaded[c.ID]; seen {
			continue
		}
		if s.opts.MaxCards > 0 && len(s.loaded) >= s.opts.MaxCards {
			break
		}
		s.loaded[c.ID] = struct{}{}
		s.batch = append(s.batch, c)
		added++
	}
	if n := len(s.loaded) - s.dropped; n > s.total {
		s.total = n
	}
	return added
}

// SubmitReview grades the current card, writes the SM-2 result to the store and
// only then updates the session counters. If the write fails transiently nothing
// in the session changes and a retryable error is returned. If the card no
// longer exists it leaves the slot and ErrNotFound is returned. A second call
// while a write is outstanding fails with ErrReviewInFlight. The write is not
// cancelled with ctx; a Reset during the write still lets it land.
//
// A nil responseTimeMs is measured from when the card was shown.
func (s *PracticeSession) SubmitReview(ctx context.Context, grade domain.Grade, responseTimeMs *int64) (PracticeCard, error) {
	if !grade.IsValid() {
		return PracticeCard{}, fmt.Errorf("submit review: grade %d: %w", int(grade), domain.ErrInvalidGrade)
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return PracticeCard{}, domain.ErrReviewInFlight
	}
	if s.status != domain.SessionStatusActive || s.current == nil {
		s.mu.Unlock()
		return PracticeCard{}, domain.ErrNoCurrentCard
	}
	card := s.copyCurrentLocked()
	s.inFlight = true
	now := s.clock.Now()
	s.mu.Unlock()

	spentMs := max(now.Sub(card.ShownAt).Milliseconds(), 0)
	if responseTimeMs != nil {
		spentMs = *responseTimeMs
	}

	res, err := sm2.ComputeNext(s.opts.Params, sm2.CardFromStats(card.StatsOrDefault()), grade, now)
	if err != nil {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
		return PracticeCard{}, fmt.Errorf("submit review: %w", err)
	}

	stats, saveErr := s.store.SaveStats(context.WithoutCancel(ctx), card.ID, res.Update(grade, now, spentMs))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if saveErr != nil {
		s.log.WarnContext(ctx, "stats write-back failed",
			slog.Int64("card_id", card.ID),
			slog.String("error", saveErr.Error()),
		)
		if errors.Is(saveErr, domain.ErrNotFound) && s.current != nil && s.current.ID == card.ID {
			s.current = nil
			s.dropped++
			if s.total > len(s.reviewed) {
				s.total--
			}
		}
		return PracticeCard{}, domain.Retryable("save card stats", saveErr)
	}

	if s.status != domain.SessionStatusActive {
		s.log.InfoContext(ctx, "review persisted after session reset", slog.Int64("card_id", card.ID))
		return PracticeCard{}, domain.ErrSessionNotActive
	}

	g := grade
	card.Grade = &g
	card.Correct = grade.IsCorrect()
	card.TimeSpentMs = spentMs
	card.NewStats = &stats

	s.reviewed = append(s.reviewed, card)
	if card.Correct {
		s.correct++
	}
	s.grades.Inc(grade)
	s.totalResponseMs += spentMs
	s.current = nil

	return card, nil
}

// Complete finalizes the session and returns its summary. Later calls return
// the same summary without recomputing it.
func (s *PracticeSession) Complete() (domain.SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary != nil {
		return cloneSummary(*s.summary), nil
	}
	if s.inFlight {
		return domain.SessionSummary{}, domain.ErrReviewInFlight
	}
	if s.status != domain.SessionStatusActive && s.status != domain.SessionStatusComplete {
		return domain.SessionSummary{}, domain.ErrSessionNotActive
	}

	now := s.clock.Now()
	if s.status == domain.SessionStatusActive {
		s.finishLocked(now)
	}
	s.current = nil
	s.batch = nil

	sum := Summarize(s.snapshotLocked(), now)
	s.summary = &sum
	return cloneSummary(sum), nil
}

// Reset abandons the session. An outstanding write-back still completes.
func (s *PracticeSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = domain.SessionStatusAbandoned
	s.batch = nil
	s.current = nil
	s.reviewed = nil
	clear(s.loaded)
}

// Snapshot returns a copy of the session state.
func (s *PracticeSession) Snapshot() PracticeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *PracticeSession) finishLocked(now time.Time) {
	s.status = domain.SessionStatusComplete
	s.finishedAt = &now
}

func (s *PracticeSession) capTotal(n int) int {
	if s.opts.MaxCards > 0 && n > s.opts.MaxCards {
		return s.opts.MaxCards
	}
	return n
}

func (s *PracticeSession) copyCurrentLocked() PracticeCard {
	return *s.current
}

func (s *PracticeSession) snapshotLocked() PracticeSnapshot {
	snap := PracticeSnapshot{
		ID:              s.id,
		DeckID:          s.opts.DeckID,
		Mode:            s.opts.Mode,
		Status:          s.status,
		Reviewed:        slices.Clone(s.reviewed),
		Remaining:       len(s.batch),
		TotalCards:      s.total,
		CorrectCount:    s.correct,
		GradeCounts:     s.grades,
		TotalResponseMs: s.totalResponseMs,
		ReviewInFlight:  s.inFlight,
		StartedAt:       s.startedAt,
	}
	if s.current != nil {
		c := *s.current
		snap.Current = &c
	}
	if s.finishedAt != nil {
		f := *s.finishedAt
		snap.FinishedAt = &f
	}
	return snap
}

// PracticeSnapshot is a point-in-time copy of a PracticeSession.
type PracticeSnapshot struct {
	ID              uuid.UUID
	DeckID          *int64
	Mode            domain.PracticeMode
	Status          domain.SessionStatus
	Current         *PracticeCard
	Reviewed        []PracticeCard
	Remaining       int
	TotalCards      int
	CorrectCount    int
	GradeCounts     domain.GradeCounts
	TotalResponseMs int64
	ReviewInFlight  bool
	StartedAt       time.Time
	FinishedAt      *time.Time
}

// ReviewedCount is the number of cards graded and persisted in this session.
func (s PracticeSnapshot) ReviewedCount() int { return len(s.Reviewed) }

// Kind implements Progress.
func (s PracticeSnapshot) Kind() string { return KindPractice }

// Counters implements Progress. Every reviewed card counts as completed.
func (s PracticeSnapshot) Counters() Counters {
	gc := s.GradeCounts
	return Counters{
		Total:           s.TotalCards,
		Reviewed:        len(s.Reviewed),
		Correct:         s.CorrectCount,
		Completed:       len(s.Reviewed),
		TotalResponseMs: s.TotalResponseMs,
		GradeCounts:     &gc,
		StartedAt:       s.StartedAt,
		FinishedAt:      s.FinishedAt,
	}
}
