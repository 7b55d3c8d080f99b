package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"library-backend/internal/logger"
	"library-backend/internal/security"

	"github.com/google/uuid"
)

type contextKey string

const (
	userIDKey    contextKey = "user-id"
	requestIDKey contextKey = "request-id"
)

// UserID extracts the authenticated user's id from the request context.
func UserID(ctx context.Context) (int32, bool) {
	id, ok := ctx.Value(userIDKey).(int32)
	return id, ok
}

// AuthMiddleware validates the Bearer token on protected routes and injects
// the authenticated user id into the request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeError(w, http.StatusUnauthorized, "authorization token is not provided", "MISSING_TOKEN")
				return
			}

			token := header
			if len(token) > 7 && strings.EqualFold(token[0:7], "Bearer ") {
				token = token[7:]
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token", "INVALID_TOKEN")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDMiddleware tags every request with an id for log correlation.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs each request with its outcome and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		requestID, _ := r.Context().Value(requestIDKey).(string)
		logger.Info("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
