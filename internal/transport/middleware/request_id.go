package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request id in both directions: clients
// may supply one, and the response always echoes the effective id.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that attaches a request id to the
// context and the response. An incoming id is reused so the pair's
// clients can correlate retries; otherwise a fresh UUID is minted.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			ctx := ctxutil.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
