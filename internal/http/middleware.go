package httpapi

import (
	"context"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// SessionHeader carries the session ID in both directions.
const SessionHeader = "X-Session-ID"

// RequestIDHeader carries the per-request correlation ID. An inbound value is
// reused; otherwise one is generated.
const RequestIDHeader = "X-Request-ID"

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionIDFromContext returns the request's session ID, or "" when session
// tracking is disabled.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// sessionMiddleware resolves the session named by the X-Session-ID header,
// creating a fresh one when the header is absent or the session has expired.
// The effective ID is echoed back on the response.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Sessions == nil {
			next.ServeHTTP(w, r)
			return
		}

		id := r.Header.Get(SessionHeader)
		if id != "" {
			if _, err := s.Sessions.Get(id); err != nil {
				id = ""
			}
		}
		if id == "" {
			sess := s.Sessions.Create(r.UserAgent(), r.RemoteAddr)
			id = sess.ID
		}

		w.Header().Set(SessionHeader, id)
		ctx := context.WithValue(r.Context(), sessionIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.Log.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
