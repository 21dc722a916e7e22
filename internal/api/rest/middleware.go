package rest

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/felixge/httpsnoop"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the per-request correlation ID
const RequestIDHeader = "X-Request-ID"

// RecoveryMiddleware turns handler panics into 500 responses
func RecoveryMiddleware(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					w.Header().Set("Connection", "close")
					log.WithFields(logrus.Fields{
						"path":  r.URL.Path,
						"panic": rec,
						"stack": string(debug.Stack()),
					}).Error("❌ handler panic")
					respondError(w, http.StatusInternalServerError, "Internal server error", fmt.Errorf("%v", rec))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware assigns a request ID and logs one line per request
func LoggingMiddleware(log *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			m := httpsnoop.CaptureMetrics(next, w, r)

			entry := log.WithFields(logrus.Fields{
				"request_id": id,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     m.Code,
				"bytes":      m.Written,
				"duration":   m.Duration.String(),
			})
			if m.Code >= 500 {
				entry.Warn("request failed")
				return
			}
			entry.Info("request")
		})
	}
}

// RateLimitMiddleware applies one global token bucket. rps <= 0 disables it.
// One bucket is shared by every route the middleware wraps.
func RateLimitMiddleware(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				respondError(w, http.StatusTooManyRequests, "Rate limit exceeded", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows the configured origins ("*" for any)
func CORSMiddleware(allowed []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})
}
