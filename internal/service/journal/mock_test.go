package journal

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pairlog/pairlog-backend/internal/domain"
)

// entryRepoMock is a hand-rolled mock of entryRepo with moq-style call tracking.
type entryRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	CreateFunc  func(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	UpdateFunc  func(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	mu          sync.Mutex
	createCalls []*domain.Entry
	updateCalls []*domain.Entry
	deleteCalls []uuid.UUID
}

func (m *entryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *entryRepoMock) Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, entry)
	m.mu.Unlock()
	return m.CreateFunc(ctx, entry)
}

func (m *entryRepoMock) Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	m.mu.Lock()
	m.updateCalls = append(m.updateCalls, entry)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, entry)
}

func (m *entryRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, id)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *entryRepoMock) CreateCalls() []*domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *entryRepoMock) UpdateCalls() []*domain.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

func (m *entryRepoMock) DeleteCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCalls
}

// userRepoMock is a hand-rolled mock of userRepo.
type userRepoMock struct {
	ExistsFunc func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *userRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.ExistsFunc(ctx, id)
}

// imageStoreMock is a hand-rolled mock of imageStore.
type imageStoreMock struct {
	DeleteFunc func(ctx context.Context, imageURL string) bool

	mu          sync.Mutex
	deleteCalls []string
}

func (m *imageStoreMock) Delete(ctx context.Context, imageURL string) bool {
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, imageURL)
	m.mu.Unlock()
	if m.DeleteFunc == nil {
		return true
	}
	return m.DeleteFunc(ctx, imageURL)
}

func (m *imageStoreMock) DeleteCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deleteCalls
}
