package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// CreateEntry logs a new count event for a user.
// Returns ErrNotFound when the user does not exist.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("journal.CreateEntry: check user: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", input.UserID, domain.ErrNotFound)
	}

	date := s.resolveDate(ctx, input.Date)

	entry := &domain.Entry{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Date:      date,
		WeekStart: domain.WeekStartOf(date),
		Count:     input.Count,
		Note:      input.Note,
		Tags:      input.Tags,
		ImageURL:  input.ImageURL,
		CreatedAt: s.now().UTC(),
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("journal.CreateEntry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", created.ID.String()),
		slog.String("user_id", created.UserID.String()),
		slog.Int("count", created.Count))

	return created, nil
}
