package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fccJashCoda/exerciseTracker/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// MetricsMiddleware records request counts and latency labelled by the matched chi route pattern.
// Unmatched requests are labelled "unmatched" to keep label cardinality bounded.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		metrics.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
