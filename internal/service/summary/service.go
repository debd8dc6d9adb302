// Package summary implements the read-side aggregation: entry listings
// decorated with activity counts, and weekly per-user totals.
package summary

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
	Find(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	WeekTotals(ctx context.Context, weekStart time.Time) (map[uuid.UUID]int, int, error)
}

type activityRepo interface {
	CountByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.ActivitySummary, error)
}

type notificationRepo interface {
	CountUnreadByEntryIDs(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the aggregation queries.
type Service struct {
	log           *slog.Logger
	entries       entryRepo
	activities    activityRepo
	notifications notificationRepo

	now func() time.Time
}

// NewService creates a new summary service.
func NewService(logger *slog.Logger, entries entryRepo, activities activityRepo, notifications notificationRepo) *Service {
	return &Service{
		log:           logger.With("service", "summary"),
		entries:       entries,
		activities:    activities,
		notifications: notifications,
		now:           time.Now,
	}
}
