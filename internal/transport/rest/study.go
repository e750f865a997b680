package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/carden-backend/internal/domain"
	"github.com/heartmarshall/carden-backend/internal/service/study"
	"github.com/heartmarshall/carden-backend/internal/service/study/session"
)

const defaultHistoryLimit = 20

type studyService interface {
	GetDue(ctx context.Context, input study.GetDueInput) (domain.DueSummary, error)

	StartLocalSession(ctx context.Context, input study.StartLocalInput) (session.LocalSnapshot, error)
	GetLocalSession(ctx context.Context) (session.LocalSnapshot, error)
	ShowAnswer(ctx context.Context) (session.LocalSnapshot, error)
	RateCard(ctx context.Context, input study.RateCardInput) (session.LocalSnapshot, error)
	LocalSummary(ctx context.Context) (domain.SessionSummary, error)
	ResetLocalSession(ctx context.Context) error

	StartPractice(ctx context.Context, input study.StartPracticeInput) (study.StartPracticeResult, error)
	GetPracticeSession(ctx context.Context) (session.PracticeSnapshot, error)
	NextCard(ctx context.Context) (study.NextCardResult, error)
	SubmitReview(ctx context.Context, input study.SubmitReviewInput) (session.PracticeCard, error)
	CompletePractice(ctx context.Context) (domain.SessionSummary, error)
	ResetPractice(ctx context.Context) error
	ListPracticeHistory(ctx context.Context, input study.ListHistoryInput) ([]domain.PracticeRecord, int, error)
}

// StudyHandler exposes local and practice sessions over HTTP.
// Every route expects the learner in the request context.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

// GetDue handles GET /api/v1/due?deckId=.
func (h *StudyHandler) GetDue(w http.ResponseWriter, r *http.Request) {
	deckID, err := queryInt(r, "deckId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sum, err := h.svc.GetDue(r.Context(), study.GetDueInput{DeckID: deckID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDueResponse(sum))
}

// ---------------------------------------------------------------------------
// Local sessions
// ---------------------------------------------------------------------------

// StartLocal handles POST /api/v1/sessions/local.
func (h *StudyHandler) StartLocal(w http.ResponseWriter, r *http.Request) {
	var req startLocalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	snap, err := h.svc.StartLocalSession(r.Context(), study.StartLocalInput{
		DeckID:  req.DeckID,
		Shuffle: req.Shuffle,
		Mode:    domain.SessionMode(req.Mode),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLocalSessionResponse(snap))
}

// GetLocal handles GET /api/v1/sessions/local.
func (h *StudyHandler) GetLocal(w http.ResponseWriter, r *http.Request) {
	h.writeLocal(w, r, h.svc.GetLocalSession)
}

// ShowAnswer handles POST /api/v1/sessions/local/show-answer.
func (h *StudyHandler) ShowAnswer(w http.ResponseWriter, r *http.Request) {
	h.writeLocal(w, r, h.svc.ShowAnswer)
}

// RateCard handles POST /api/v1/sessions/local/rate.
func (h *StudyHandler) RateCard(w http.ResponseWriter, r *http.Request) {
	var req rateCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	snap, err := h.svc.RateCard(r.Context(), study.RateCardInput{Difficulty: domain.Difficulty(req.Difficulty)})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLocalSessionResponse(snap))
}

// LocalSummary handles GET /api/v1/sessions/local/summary.
func (h *StudyHandler) LocalSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.LocalSummary(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// ResetLocal handles DELETE /api/v1/sessions/local.
func (h *StudyHandler) ResetLocal(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetLocalSession(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StudyHandler) writeLocal(w http.ResponseWriter, r *http.Request, fn func(context.Context) (session.LocalSnapshot, error)) {
	snap, err := fn(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLocalSessionResponse(snap))
}

// ---------------------------------------------------------------------------
// Practice sessions
// ---------------------------------------------------------------------------

// StartPractice handles POST /api/v1/sessions/practice. When cards exist but
// none is due yet it answers 200 with a null session and the availability.
func (h *StudyHandler) StartPractice(w http.ResponseWriter, r *http.Request) {
	var req startPracticeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.StartPractice(r.Context(), study.StartPracticeInput{
		DeckID: req.DeckID,
		Mode:   domain.PracticeMode(req.Mode),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := startPracticeResponse{Availability: toDueResponse(res.Availability)}
	status := http.StatusOK
	if res.Session != nil {
		s := toPracticeSessionResponse(*res.Session)
		resp.Session = &s
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

// GetPractice handles GET /api/v1/sessions/practice.
func (h *StudyHandler) GetPractice(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GetPracticeSession(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPracticeSessionResponse(snap))
}

// NextCard handles POST /api/v1/sessions/practice/next.
func (h *StudyHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.NextCard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := nextCardResponse{Session: toPracticeSessionResponse(res.Session)}
	if res.Card != nil {
		c := toPracticeCardResponse(*res.Card)
		resp.Card = &c
	}
	writeJSON(w, http.StatusOK, resp)
}

// SubmitReview handles POST /api/v1/sessions/practice/review.
func (h *StudyHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Grade == nil {
		handleError(h.log, w, r, domain.NewValidationError("grade", "required"))
		return
	}

	card, err := h.svc.SubmitReview(r.Context(), study.SubmitReviewInput{
		Grade:          domain.Grade(*req.Grade),
		ResponseTimeMs: req.ResponseTimeMs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPracticeCardResponse(card))
}

// CompletePractice handles POST /api/v1/sessions/practice/complete.
func (h *StudyHandler) CompletePractice(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.CompletePractice(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// ResetPractice handles DELETE /api/v1/sessions/practice.
func (h *StudyHandler) ResetPractice(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetPractice(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListHistory handles GET /api/v1/sessions/practice/history?limit=&offset=.
func (h *StudyHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := study.ListHistoryInput{Limit: defaultHistoryLimit}
	if limit != nil {
		input.Limit = int(*limit)
	}
	if offset != nil {
		input.Offset = int(*offset)
	}

	records, total, err := h.svc.ListPracticeHistory(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(records, total, input.Limit, input.Offset))
}
