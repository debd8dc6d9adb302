package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// UnreadCount returns the number of unread notifications for a recipient.
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("activity.UnreadCount: %w", err)
	}

	return count, nil
}

// MarkRead marks all of a recipient's notifications on one entry as read.
// Idempotent: a repeat call flips nothing and is not an error.
func (s *Service) MarkRead(ctx context.Context, entryID, userID uuid.UUID) error {
	flipped, err := s.notifications.MarkRead(ctx, entryID, userID)
	if err != nil {
		return fmt.Errorf("activity.MarkRead: %w", err)
	}

	if flipped > 0 {
		s.log.InfoContext(ctx, "notifications marked read",
			slog.String("entry_id", entryID.String()),
			slog.String("user_id", userID.String()),
			slog.Int("count", flipped))
	}

	return nil
}
