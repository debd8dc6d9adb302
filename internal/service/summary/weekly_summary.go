package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// WeeklySummary returns per-user totals for one week. A nil weekStart means
// the week containing the current instant. Any instant within a week is
// accepted; it is normalized to that week's Monday.
func (s *Service) WeeklySummary(ctx context.Context, weekStart *time.Time) (*domain.WeeklySummary, error) {
	at := s.now()
	if weekStart != nil {
		at = *weekStart
	}
	week := domain.WeekStartOf(at)

	totals, entryCount, err := s.entries.WeekTotals(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("summary.WeeklySummary: %w", err)
	}

	return &domain.WeeklySummary{
		WeekStart:  week,
		Totals:     totals,
		EntryCount: entryCount,
	}, nil
}
