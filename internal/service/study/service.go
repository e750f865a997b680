package study

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carden-backend/internal/domain"
	"github.com/heartmarshall/carden-backend/internal/service/study/session"
	"github.com/heartmarshall/carden-backend/internal/service/study/sm2"
	"github.com/heartmarshall/carden-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type deckRepo interface {
	GetByID(ctx context.Context, ownerID uuid.UUID, deckID int64) (*domain.Deck, error)
}

type cardRepo interface {
	ListByDeck(ctx context.Context, ownerID uuid.UUID, deckID int64, page domain.PageRequest) (domain.Page[domain.Card], error)
	DueSummary(ctx context.Context, ownerID uuid.UUID, deckID *int64, now time.Time) (domain.DueSummary, error)
	ListDue(ctx context.Context, ownerID uuid.UUID, deckID *int64, now time.Time, page domain.PageRequest) (domain.Page[domain.DueCard], error)
}

type statsRepo interface {
	GetByCardID(ctx context.Context, ownerID uuid.UUID, cardID int64) (*domain.StudyStats, error)
	Upsert(ctx context.Context, ownerID uuid.UUID, cardID int64, upd domain.StatsUpdate) (*domain.StudyStats, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) error
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

type practiceRepo interface {
	Create(ctx context.Context, rec *domain.PracticeRecord) error
	ListByLearner(ctx context.Context, learnerID uuid.UUID, limit, offset int) ([]domain.PracticeRecord, int, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Config
// ---------------------------------------------------------------------------

// Config holds the study settings the service needs.
type Config struct {
	ShuffleByDefault bool
	DeckPageSize     int
	DueBatchSize     int
	MaxCards         int
	ImminentWindow   time.Duration
	SessionTTL       time.Duration
	Params           sm2.Parameters
}

// DefaultConfig returns the settings used when a field is left zero.
func DefaultConfig() Config {
	return Config{
		DeckPageSize:   100,
		DueBatchSize:   20,
		ImminentWindow: 5 * time.Minute,
		SessionTTL:     time.Hour,
		Params:         sm2.DefaultParameters(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DeckPageSize <= 0 {
		c.DeckPageSize = d.DeckPageSize
	}
	if c.DueBatchSize <= 0 {
		c.DueBatchSize = d.DueBatchSize
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = d.SessionTTL
	}
	if c.Params == (sm2.Parameters{}) {
		c.Params = d.Params
	}
	return c
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service runs study sessions. Each learner holds at most one active session
// at a time, local or practice; sessions live in memory and only card stats,
// review logs and finished practice summaries are persisted.
type Service struct {
	log       *slog.Logger
	decks     deckRepo
	cards     cardRepo
	stats     statsRepo
	reviews   reviewLogRepo
	practices practiceRepo
	tx        txManager
	cfg       Config
	clock     session.Clock

	mu       sync.Mutex
	learners map[uuid.UUID]*learnerSessions
}

type learnerSessions struct {
	local    *session.LocalSession
	practice *practiceEntry
	touched  time.Time
}

type practiceEntry struct {
	session   *session.PracticeSession
	persisted bool
}

// NewService creates a new study service.
func NewService(
	logger *slog.Logger,
	decks deckRepo,
	cards cardRepo,
	stats statsRepo,
	reviews reviewLogRepo,
	practices practiceRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		log:       logger.With("service", "study"),
		decks:     decks,
		cards:     cards,
		stats:     stats,
		reviews:   reviews,
		practices: practices,
		tx:        tx,
		cfg:       cfg.withDefaults(),
		clock:     session.SystemClock,
		learners:  make(map[uuid.UUID]*learnerSessions),
	}
}

func learnerFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.LearnerIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// entryLocked returns the learner's registry entry, creating it when missing.
func (s *Service) entryLocked(learnerID uuid.UUID) *learnerSessions {
	e, ok := s.learners[learnerID]
	if !ok {
		e = &learnerSessions{}
		s.learners[learnerID] = e
	}
	e.touched = s.clock.Now()
	return e
}

// busyLocked reports whether the learner already has an active session.
func (e *learnerSessions) busyLocked() bool {
	if e.local != nil && e.local.Status() == domain.SessionStatusActive {
		return true
	}
	if e.practice != nil && e.practice.session.Status() == domain.SessionStatusActive {
		return true
	}
	return false
}

func (s *Service) localSession(learnerID uuid.UUID) (*session.LocalSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.learners[learnerID]
	if !ok || e.local == nil {
		return nil, domain.ErrNotFound
	}
	e.touched = s.clock.Now()
	return e.local, nil
}

func (s *Service) practiceSession(learnerID uuid.UUID) (*practiceEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.learners[learnerID]
	if !ok || e.practice == nil {
		return nil, domain.ErrNotFound
	}
	e.touched = s.clock.Now()
	return e.practice, nil
}
