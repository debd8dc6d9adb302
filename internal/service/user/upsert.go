package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// Upsert creates a participant or replaces the mutable fields of an
// existing one. Identities are chosen by the caller so both halves of a
// couple can be provisioned with stable ids.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Upsert(ctx, &domain.User{
		ID:       input.ID,
		Name:     input.Name,
		LoveName: input.LoveName,
		Track:    input.Track,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Upsert: %w", err)
	}

	s.log.InfoContext(ctx, "participant upserted",
		slog.String("user_id", user.ID.String()),
		slog.String("track", user.Track.String()))

	return user, nil
}
