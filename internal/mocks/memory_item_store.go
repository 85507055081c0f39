package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/membuddy/membuddy-api/internal/domain"
	"github.com/membuddy/membuddy-api/internal/store"
)

// MockMemoryItemStore is an in-memory implementation of
// store.MemoryItemStore with the same ownership-scoping behavior as the
// real store: items owned by another user read as not found.
type MockMemoryItemStore struct {
	mu     sync.Mutex
	nextID int64
	items  []*domain.MemoryItem // in insertion order

	CreateErr error
	ListErr   error
	GetErr    error
	UpdateErr error
	DeleteErr error
}

var _ store.MemoryItemStore = (*MockMemoryItemStore)(nil)

// NewMockMemoryItemStore creates an empty MockMemoryItemStore.
func NewMockMemoryItemStore() *MockMemoryItemStore {
	return &MockMemoryItemStore{}
}

// List implements store.MemoryItemStore.
func (m *MockMemoryItemStore) List(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*domain.MemoryItem, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	owned := []*domain.MemoryItem{}
	for _, item := range m.items {
		if item.UserID == userID {
			copied := *item
			owned = append(owned, &copied)
		}
	}

	if offset >= len(owned) {
		return []*domain.MemoryItem{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

// Create implements store.MemoryItemStore.
func (m *MockMemoryItemStore) Create(ctx context.Context, item *domain.MemoryItem) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	item.ID = m.nextID
	copied := *item
	m.items = append(m.items, &copied)
	return nil
}

// GetForUser implements store.MemoryItemStore.
func (m *MockMemoryItemStore) GetForUser(
	ctx context.Context,
	userID, id int64,
) (*domain.MemoryItem, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.items {
		if item.ID == id && item.UserID == userID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, store.ErrMemoryItemNotFound
}

// Update implements store.MemoryItemStore.
func (m *MockMemoryItemStore) Update(
	ctx context.Context,
	userID int64,
	item *domain.MemoryItem,
) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.items {
		if existing.ID == item.ID && existing.UserID == userID {
			existing.Content = item.Content
			existing.MemoryAids = append([]string(nil), item.MemoryAids...)
			now := time.Now().UTC()
			existing.UpdatedAt = &now
			item.UpdatedAt = &now
			return nil
		}
	}
	return store.ErrMemoryItemNotFound
}

// Delete implements store.MemoryItemStore.
func (m *MockMemoryItemStore) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, item := range m.items {
		if item.ID == id && item.UserID == userID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return store.ErrMemoryItemNotFound
}
