package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// Get returns a single participant.
// Returns ErrNotFound if no participant with the id exists.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}

	return user, nil
}

// List returns all participants ordered by creation time.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}

	return users, nil
}
