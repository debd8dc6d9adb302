package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// UpdateEntry applies a partial update to an entry owned by the requester.
// Returns ErrNotFound when the entry does not exist and ErrForbidden when
// the requester is not the owner. EditedAt is stamped on every accepted
// update, even when the new values equal the old ones.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.Entry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("journal.UpdateEntry: %w", err)
	}
	if entry.UserID != input.RequesterID {
		return nil, fmt.Errorf("entry %s: %w", input.EntryID, domain.ErrForbidden)
	}

	if input.Date != nil {
		date := s.resolveDate(ctx, *input.Date)
		entry.Date = date
		entry.WeekStart = domain.WeekStartOf(date)
	}
	if input.Count != nil {
		entry.Count = *input.Count
	}
	if input.Note.Set {
		entry.Note = input.Note.Value
	}
	if input.Tags.Set {
		if input.Tags.Value == nil {
			entry.Tags = nil
		} else {
			entry.Tags = *input.Tags.Value
		}
	}
	if input.ImageURL.Set {
		s.cleanupReplacedImage(ctx, entry.ImageURL, input.ImageURL.Value)
		entry.ImageURL = input.ImageURL.Value
	}

	editedAt := s.now().UTC()
	entry.EditedAt = &editedAt

	updated, err := s.entries.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("journal.UpdateEntry: %w", err)
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("entry_id", updated.ID.String()),
		slog.String("user_id", updated.UserID.String()))

	return updated, nil
}

// cleanupReplacedImage deletes the previous blob when the image pointer
// moves away from it. The outcome never blocks the mutation.
func (s *Service) cleanupReplacedImage(ctx context.Context, old, next *string) {
	if old == nil {
		return
	}
	if next != nil && *next == *old {
		return
	}

	if !s.images.Delete(ctx, *old) {
		s.log.WarnContext(ctx, "old image blob not deleted",
			slog.String("image_url", *old))
	}
}
