package middleware

import (
	"net/http"
	"time"
)

type httpRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records request counts and latencies by matched route pattern.
// It must wrap the ServeMux directly: the mux sets r.Pattern on the request
// it receives, and any middleware in between replaces that request.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
