// Package ctxutil carries per-request identifiers through the context:
// the request id minted by the transport and the requester id the
// pair's clients send in the X-User-Id header. Handlers validate the
// requester themselves; the context copy exists so log lines can name
// who acted without re-parsing headers.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	requesterIDKey
)

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id, or "" when the context has none.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRequesterID returns a context carrying the acting user's id.
func WithRequesterID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, requesterIDKey, id)
}

// RequesterID returns the acting user's id. ok is false when no
// requester was attached or the stored id is the zero UUID.
func RequesterID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(requesterIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
