package activity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// activityRepoMock is a hand-rolled mock of activityRepo with moq-style call tracking.
type activityRepoMock struct {
	CreateFunc        func(ctx context.Context, activity *domain.EntryActivity) (*domain.EntryActivity, error)
	ListByEntryIDFunc func(ctx context.Context, entryID uuid.UUID) ([]domain.EntryActivity, error)

	mu          sync.Mutex
	createCalls []*domain.EntryActivity
}

func (m *activityRepoMock) Create(ctx context.Context, activity *domain.EntryActivity) (*domain.EntryActivity, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, activity)
	m.mu.Unlock()
	return m.CreateFunc(ctx, activity)
}

func (m *activityRepoMock) ListByEntryID(ctx context.Context, entryID uuid.UUID) ([]domain.EntryActivity, error) {
	return m.ListByEntryIDFunc(ctx, entryID)
}

func (m *activityRepoMock) CreateCalls() []*domain.EntryActivity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

// notificationRepoMock is a hand-rolled mock of notificationRepo.
type notificationRepoMock struct {
	CreateFunc      func(ctx context.Context, notification *domain.Notification) (*domain.Notification, error)
	CountUnreadFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	MarkReadFunc    func(ctx context.Context, entryID, userID uuid.UUID) (int, error)

	mu          sync.Mutex
	createCalls []*domain.Notification
}

func (m *notificationRepoMock) Create(ctx context.Context, notification *domain.Notification) (*domain.Notification, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, notification)
	m.mu.Unlock()
	return m.CreateFunc(ctx, notification)
}

func (m *notificationRepoMock) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.CountUnreadFunc(ctx, userID)
}

func (m *notificationRepoMock) MarkRead(ctx context.Context, entryID, userID uuid.UUID) (int, error) {
	return m.MarkReadFunc(ctx, entryID, userID)
}

func (m *notificationRepoMock) CreateCalls() []*domain.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

// entryRepoMock is a hand-rolled mock of entryRepo.
type entryRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
}

func (m *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	return m.GetByIDFunc(ctx, id)
}

// userRepoMock is a hand-rolled mock of userRepo.
type userRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *userRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.ExistsFunc(ctx, id)
}

// txManagerMock runs the function inline, like a transaction that always
// commits unless fn fails.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
