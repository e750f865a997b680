package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/carden-backend/internal/domain"
	"github.com/heartmarshall/carden-backend/pkg/ctxutil"
)

const maxBodyBytes = 64 << 10

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error     string               `json:"error"`
	Message   string               `json:"message"`
	Fields    []fieldErrorResponse `json:"fields,omitempty"`
	RequestID string               `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads a JSON body into v. Unknown fields and trailing data are
// rejected as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, domain.ErrInvalidGrade) {
			return err
		}
		return domain.NewValidationError("body", fmt.Sprintf("invalid JSON: %v", err))
	}
	if dec.More() {
		return domain.NewValidationError("body", "unexpected data after JSON object")
	}
	return nil
}

// queryInt returns the integer query parameter name, or nil when absent.
func queryInt(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be an integer")
	}
	return &n, nil
}

// errorStatus maps an error to its HTTP status and a stable error code.
// Retryable failures win over whatever caused them.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable, "UNAVAILABLE"
	case errors.Is(err, domain.ErrInvalidGrade):
		return http.StatusBadRequest, "INVALID_GRADE"
	case errors.Is(err, domain.ErrEmptyDeck):
		return http.StatusBadRequest, "EMPTY_DECK"
	case errors.Is(err, domain.ErrNoCurrentCard):
		return http.StatusBadRequest, "NO_CURRENT_CARD"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNoCardsDue):
		return http.StatusNotFound, "NO_CARDS"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrReviewInFlight):
		return http.StatusConflict, "REVIEW_IN_FLIGHT"
	case errors.Is(err, domain.ErrSessionNotActive):
		return http.StatusConflict, "SESSION_NOT_ACTIVE"
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// handleError writes err as a JSON error response. Internal errors are
// logged and their message is not exposed.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)

	resp := errorResponse{
		Error:     code,
		Message:   err.Error(),
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
		}
	}

	switch status {
	case http.StatusInternalServerError:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		resp.Message = "internal server error"
	case http.StatusServiceUnavailable:
		log.WarnContext(r.Context(), "store unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", "1")
	}

	writeJSON(w, status, resp)
}
