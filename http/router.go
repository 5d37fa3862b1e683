package http

import (
	"log/slog"
	"net/http"
)

type Handlers struct {
	Projection *ProjectionHandler
	Goal       *GoalHandler
	History    *HistoryHandler
}

// NewRouter wires every finance route behind the rate limiter and request
// logging. /healthz is left unthrottled for probes.
func NewRouter(h Handlers, limiter *RateLimiter, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	route := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, LoggingMiddleware(logger, RateLimitMiddleware(limiter, fn)))
	}

	route("/finance/project", h.Projection.Project)
	route("/finance/sip", h.Projection.SIP)
	route("/finance/lumpsum", h.Projection.LumpSum)
	route("/finance/inflation", h.Projection.Inflation)
	route("/finance/double", h.Projection.Double)
	route("/finance/words", h.Projection.Words)
	route("/finance/goal", h.Goal.Goal)
	route("/finance/goal/plan", h.Goal.Plan)
	route("/finance/history", h.History.Recent)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	return mux
}
