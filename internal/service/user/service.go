// Package user implements participant management. The participant set is
// tiny and fixed (a couple), so the whole surface is upsert, get and list.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// Service implements participant operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
