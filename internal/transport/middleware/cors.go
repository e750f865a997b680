package middleware

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/heartmarshall/carden-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// Preflight requests are answered directly; the request id header is exposed
// to browsers so clients can report it.
func CORS(cfg config.CORSConfig) Middleware {
	origins := cfg.Origins()
	wildcard := slices.Contains(origins, "*")
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowed := func(origin string) bool {
		return wildcard || slices.Contains(origins, origin)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			if origin != "" && allowed(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if origin != "" && allowed(origin) {
					w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					w.Header().Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
