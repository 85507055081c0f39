package mocks

import (
	"context"
	"sync"

	"github.com/membuddy/membuddy-api/internal/domain"
	"github.com/membuddy/membuddy-api/internal/store"
)

// MockReviewScheduleStore is an in-memory implementation of
// store.ReviewScheduleStore.
type MockReviewScheduleStore struct {
	mu        sync.Mutex
	nextID    int64
	schedules []*domain.ReviewSchedule

	CreateErr error
	ListErr   error
}

var _ store.ReviewScheduleStore = (*MockReviewScheduleStore)(nil)

// NewMockReviewScheduleStore creates an empty MockReviewScheduleStore.
func NewMockReviewScheduleStore() *MockReviewScheduleStore {
	return &MockReviewScheduleStore{}
}

// Create implements store.ReviewScheduleStore.
func (m *MockReviewScheduleStore) Create(ctx context.Context, schedule *domain.ReviewSchedule) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	schedule.ID = m.nextID
	copied := *schedule
	m.schedules = append(m.schedules, &copied)
	return nil
}

// ListForUser implements store.ReviewScheduleStore.
func (m *MockReviewScheduleStore) ListForUser(
	ctx context.Context,
	userID int64,
) ([]*domain.ReviewSchedule, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	owned := []*domain.ReviewSchedule{}
	for _, schedule := range m.schedules {
		if schedule.UserID == userID {
			copied := *schedule
			owned = append(owned, &copied)
		}
	}
	return owned, nil
}

// Count returns the total number of stored schedules across all users.
// Used to assert that failed creations insert nothing.
func (m *MockReviewScheduleStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.schedules)
}
