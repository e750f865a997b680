package rest

import (
	"net/http"

	"github.com/heartmarshall/carden-backend/internal/transport/middleware"
)

const apiPrefix = "/api/v1"

// NewRouter registers the health probes and the study API. Study routes are
// wrapped with protect, which must put the learner into the request context.
func NewRouter(health *HealthHandler, study *StudyHandler, protect middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	api := func(method, path string, h http.HandlerFunc) {
		mux.Handle(method+" "+apiPrefix+path, protect(h))
	}

	api("GET", "/due", study.GetDue)

	api("POST", "/sessions/local", study.StartLocal)
	api("GET", "/sessions/local", study.GetLocal)
	api("DELETE", "/sessions/local", study.ResetLocal)
	api("POST", "/sessions/local/show-answer", study.ShowAnswer)
	api("POST", "/sessions/local/rate", study.RateCard)
	api("GET", "/sessions/local/summary", study.LocalSummary)

	api("POST", "/sessions/practice", study.StartPractice)
	api("GET", "/sessions/practice", study.GetPractice)
	api("DELETE", "/sessions/practice", study.ResetPractice)
	api("POST", "/sessions/practice/next", study.NextCard)
	api("POST", "/sessions/practice/review", study.SubmitReview)
	api("POST", "/sessions/practice/complete", study.CompletePractice)
	api("GET", "/sessions/practice/history", study.ListHistory)

	return mux
}
