package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/pkg/ctxutil"
)

// Requester copies a valid X-User-Id header into the context so the
// request log can name the acting pair member. Handlers that need the
// requester still validate the header themselves; a missing or
// malformed value is not an error here because read-only endpoints
// work without one.
func Requester(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, err := uuid.Parse(r.Header.Get("X-User-Id")); err == nil && id != uuid.Nil {
			r = r.WithContext(ctxutil.WithRequesterID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
