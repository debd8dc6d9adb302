package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// DeleteEntry removes an entry owned by the requester. The image blob is
// deleted best-effort first; the row removal proceeds regardless of the
// blob outcome. Activities and notifications go with the row via cascade.
func (s *Service) DeleteEntry(ctx context.Context, input DeleteEntryInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return fmt.Errorf("journal.DeleteEntry: %w", err)
	}
	if entry.UserID != input.RequesterID {
		return fmt.Errorf("entry %s: %w", input.EntryID, domain.ErrForbidden)
	}

	if entry.ImageURL != nil {
		if !s.images.Delete(ctx, *entry.ImageURL) {
			s.log.WarnContext(ctx, "image blob not deleted",
				slog.String("entry_id", entry.ID.String()),
				slog.String("image_url", *entry.ImageURL))
		}
	}

	if err := s.entries.Delete(ctx, input.EntryID); err != nil {
		return fmt.Errorf("journal.DeleteEntry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()))

	return nil
}
