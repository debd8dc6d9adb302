package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// Record persists an activity on an entry. When the actor is not the entry
// owner, exactly one notification for the owner is written in the same
// transaction; acting on your own entry never notifies anyone.
// Returns ErrNotFound when the entry or the actor does not exist.
func (s *Service) Record(ctx context.Context, input RecordInput) (*domain.EntryActivity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("activity.Record: %w", err)
	}

	exists, err := s.users.Exists(ctx, input.ActorID)
	if err != nil {
		return nil, fmt.Errorf("activity.Record: check actor: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("actor %s: %w", input.ActorID, domain.ErrNotFound)
	}

	now := s.now().UTC()
	activity := &domain.EntryActivity{
		ID:        uuid.New(),
		EntryID:   input.EntryID,
		ActorID:   input.ActorID,
		Type:      input.Type,
		Content:   input.Content,
		CreatedAt: now,
	}

	var created *domain.EntryActivity
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.activities.Create(txCtx, activity)
		if createErr != nil {
			return fmt.Errorf("create activity: %w", createErr)
		}

		if input.ActorID == entry.UserID {
			return nil
		}

		_, notifErr := s.notifications.Create(txCtx, &domain.Notification{
			ID:         uuid.New(),
			UserID:     entry.UserID,
			ActorID:    input.ActorID,
			EntryID:    entry.ID,
			ActivityID: created.ID,
			Type:       input.Type,
			IsRead:     false,
			CreatedAt:  now,
		})
		if notifErr != nil {
			return fmt.Errorf("create notification: %w", notifErr)
		}

		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("activity.Record: %w", txErr)
	}

	s.log.InfoContext(ctx, "activity recorded",
		slog.String("entry_id", entry.ID.String()),
		slog.String("actor_id", input.ActorID.String()),
		slog.String("type", input.Type.String()),
		slog.Bool("notified", input.ActorID != entry.UserID))

	return created, nil
}
