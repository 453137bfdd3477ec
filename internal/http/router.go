package http

import (
	"net/http"

	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/loggers"
	"github.com/Bryant-Yang/uwsgi-sloth/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter builds the diagnostics handler. The listener is optional and
// only useful on long runs: it exposes the pipeline counters on /metrics and
// a liveness probe on /healthz while the analysis is in flight.
func NewRouter(httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	router.Get("/healthz", handleHealthz)

	return router
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
