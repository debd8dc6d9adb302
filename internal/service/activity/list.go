package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// ListForEntry returns all activities on an entry in creation order.
// Returns ErrNotFound when the entry does not exist.
func (s *Service) ListForEntry(ctx context.Context, entryID uuid.UUID) ([]domain.EntryActivity, error) {
	if _, err := s.entries.GetByID(ctx, entryID); err != nil {
		return nil, fmt.Errorf("activity.ListForEntry: %w", err)
	}

	activities, err := s.activities.ListByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("activity.ListForEntry: %w", err)
	}

	return activities, nil
}
