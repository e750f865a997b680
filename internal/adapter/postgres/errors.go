package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/carden-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. id is only used in the
// message and may be any printable key (int64 card ids, uuid session ids).
// Context errors pass through unmapped.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return domain.Retryable(fmt.Sprintf("%s %v", entity, id), err)
		}
		if strings.HasPrefix(pgErr.Code, "08") { // connection_exception class
			return domain.Retryable(fmt.Sprintf("%s %v", entity, id), err)
		}
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return domain.Retryable(fmt.Sprintf("%s %v", entity, id), err)
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
