package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/carden-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RequireLearner rejects requests without a valid bearer token and stores the
// learner id from the token in the request context.
func RequireLearner(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", `Bearer realm="carden"`)
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
				return
			}

			learnerID, err := validator.ValidateAccessToken(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="carden", error="invalid_token"`)
				writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "invalid bearer token")
				return
			}

			ctx := ctxutil.WithLearnerID(r.Context(), learnerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
