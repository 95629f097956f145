package api

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// requestIDHeader carries the per-request UUID back to the caller.
const requestIDHeader = "X-Request-ID"

// loggingResponseWriter captures the status code for access logging.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// withRequestLogging tags each request with a UUID and logs method, path,
// status and duration once the handler returns.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()
		w.Header().Set(requestIDHeader, requestID)

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		log.Printf("[%s] %s %s %d (%v)",
			requestID, r.Method, r.URL.Path, lrw.statusCode, time.Since(start))
	})
}
