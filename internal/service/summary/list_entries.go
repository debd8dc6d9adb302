package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// ListInput holds the optional filters for an entry listing.
type ListInput struct {
	// WeekStart restricts to entries keyed to the given week.
	WeekStart *time.Time
	// Date restricts to the full calendar day containing the instant.
	Date *time.Time
	// UserID restricts to one owner and switches on unread counts.
	UserID *uuid.UUID
}

// ListEntries returns entries matching the filters, newest date first, each
// decorated with per-type activity counts. When UserID is supplied the rows
// also carry that user's unread notification count per entry.
func (s *Service) ListEntries(ctx context.Context, input ListInput) ([]domain.EntryWithSummary, error) {
	// Any instant selects its week; snap to Monday so a mid-week value
	// matches the stored week_start keys.
	week := input.WeekStart
	if week != nil {
		monday := domain.WeekStartOf(*week)
		week = &monday
	}

	entries, err := s.entries.Find(ctx, domain.EntryFilter{
		WeekStart: week,
		Day:       input.Date,
		UserID:    input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("summary.ListEntries: %w", err)
	}

	ids := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	counts, err := s.activities.CountByEntryIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("summary.ListEntries: activity counts: %w", err)
	}

	var unread map[uuid.UUID]int
	if input.UserID != nil {
		unread, err = s.notifications.CountUnreadByEntryIDs(ctx, *input.UserID, ids)
		if err != nil {
			return nil, fmt.Errorf("summary.ListEntries: unread counts: %w", err)
		}
	}

	result := make([]domain.EntryWithSummary, len(entries))
	for i, e := range entries {
		result[i] = domain.EntryWithSummary{
			Entry:               e,
			ActivitySummary:     counts[e.ID],
			UnreadActivityCount: unread[e.ID],
		}
	}

	return result, nil
}
