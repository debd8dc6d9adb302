package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/pkg/ctxutil"
)

func TestRequestID_ReusesIncomingID(t *testing.T) {
	t.Parallel()

	incoming := uuid.NewString()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := ctxutil.RequestID(r.Context()); got != incoming {
			t.Errorf("context request id: got %q, want %q", got, incoming)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("response header: got %q, want %q", got, incoming)
	}
}

func TestRequestID_MintsWhenAbsent(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctxutil.RequestID(r.Context()) == "" {
			t.Error("expected a minted request id in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	minted := rec.Header().Get(RequestIDHeader)
	if minted == "" {
		t.Fatal("expected response header to carry the minted id")
	}
	if _, err := uuid.Parse(minted); err != nil {
		t.Errorf("minted id is not a UUID: %q", minted)
	}
}
