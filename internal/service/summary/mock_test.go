package summary

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// entryRepoMock is a hand-rolled mock of entryRepo.
type entryRepoMock struct {
	FindFunc       func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	WeekTotalsFunc func(ctx context.Context, weekStart time.Time) (map[uuid.UUID]int, int, error)
}

func (m *entryRepoMock) Find(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	return m.FindFunc(ctx, filter)
}

func (m *entryRepoMock) WeekTotals(ctx context.Context, weekStart time.Time) (map[uuid.UUID]int, int, error) {
	return m.WeekTotalsFunc(ctx, weekStart)
}

// activityRepoMock is a hand-rolled mock of activityRepo.
type activityRepoMock struct {
	CountByEntryIDsFunc func(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.ActivitySummary, error)
}

func (m *activityRepoMock) CountByEntryIDs(ctx context.Context, entryIDs []uuid.UUID) (map[uuid.UUID]domain.ActivitySummary, error) {
	return m.CountByEntryIDsFunc(ctx, entryIDs)
}

// notificationRepoMock is a hand-rolled mock of notificationRepo.
type notificationRepoMock struct {
	CountUnreadByEntryIDsFunc func(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) (map[uuid.UUID]int, error)

	calls int
}

func (m *notificationRepoMock) CountUnreadByEntryIDs(ctx context.Context, userID uuid.UUID, entryIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	m.calls++
	return m.CountUnreadByEntryIDsFunc(ctx, userID, entryIDs)
}
