// Package activity implements the reaction/comment/reply fan-out: each
// recorded activity notifies the entry owner unless the actor is the owner.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type activityRepo interface {
	Create(ctx context.Context, activity *domain.EntryActivity) (*domain.EntryActivity, error)
	ListByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.EntryActivity, error)
}

type notificationRepo interface {
	Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, entryID, userID uuid.UUID) (int, error)
}

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
}

type userRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the activity business logic.
type Service struct {
	log           *slog.Logger
	activities    activityRepo
	notifications notificationRepo
	entries       entryRepo
	users         userRepo
	tx            txManager

	now func() time.Time
}

// NewService creates a new activity service.
func NewService(
	logger *slog.Logger,
	activities activityRepo,
	notifications notificationRepo,
	entries entryRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:           logger.With("service", "activity"),
		activities:    activities,
		notifications: notifications,
		entries:       entries,
		users:         users,
		tx:            tx,
		now:           time.Now,
	}
}
