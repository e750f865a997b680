// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	learnerIDKey ctxKey = iota
	requestIDKey
)

// WithLearnerID stores the authenticated learner in the context.
func WithLearnerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, learnerIDKey, id)
}

// LearnerIDFromCtx returns the learner stored by WithLearnerID.
// A missing value and uuid.Nil both report false.
func LearnerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := value[uuid.UUID](ctx, learnerIDKey)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := value[string](ctx, requestIDKey)
	return id
}

func value[T any](ctx context.Context, key ctxKey) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}
