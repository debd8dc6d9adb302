// Package journal implements the entry mutation engine: create, update and
// delete of dated count events, including ownership checks, tri-state
// partial updates and best-effort image blob cleanup.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// imageStore deletes blobs best-effort: a false return means the blob may
// have leaked, never that the caller should fail.
type imageStore interface {
	Delete(ctx context.Context, imageURL string) bool
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the journal business logic.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	users   userRepo
	images  imageStore

	// now is the clock used for created/edited stamps and for the
	// unparseable-date fallback. Tests pin it.
	now func() time.Time
}

// NewService creates a new journal service.
func NewService(logger *slog.Logger, entries entryRepo, users userRepo, images imageStore) *Service {
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
		users:   users,
		images:  images,
		now:     time.Now,
	}
}

// dateLayouts are the accepted entry date formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// resolveDate parses a client-supplied date. An unparseable or empty value
// falls back to the current processing instant with a warning rather than
// rejecting the mutation.
func (s *Service) resolveDate(ctx context.Context, raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	s.log.WarnContext(ctx, "unparseable entry date, falling back to now",
		slog.String("date", raw))
	return s.now()
}
