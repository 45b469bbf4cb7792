package middleware

import (
	"net/http"
	"strconv"
	"time"

	"hotel-booking/pkg/observability"

	"github.com/go-chi/chi/v5"
)

// Metrics records request count and latency per route pattern, so
// /api/hotels/7 and /api/hotels/9 land in one series.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		pattern := chi.RouteContext(r.Context()).RoutePattern()
		if pattern == "" {
			pattern = "unmatched"
		}
		observability.ObserveHTTP(r.Method, pattern, strconv.Itoa(rw.statusCode), time.Since(start))
	})
}
