package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// GetEntry returns a single entry. Entries are visible to both halves of
// the couple, so no ownership check applies to reads.
func (s *Service) GetEntry(ctx context.Context, entryID uuid.UUID) (*domain.Entry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal.GetEntry: %w", err)
	}

	return entry, nil
}
