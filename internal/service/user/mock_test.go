package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// userRepoMock is a hand-rolled mock of userRepo with moq-style call tracking.
type userRepoMock struct {
	UpsertFunc  func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc    func(ctx context.Context) ([]domain.User, error)

	mu          sync.Mutex
	upsertCalls []*domain.User
	getCalls    []uuid.UUID
	listCalls   int
}

func (m *userRepoMock) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	m.upsertCalls = append(m.upsertCalls, user)
	m.mu.Unlock()
	return m.UpsertFunc(ctx, user)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	m.getCalls = append(m.getCalls, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	m.mu.Lock()
	m.listCalls++
	m.mu.Unlock()
	return m.ListFunc(ctx)
}

func (m *userRepoMock) UpsertCalls() []*domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertCalls
}
