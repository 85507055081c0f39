package store

import (
	"context"

	"github.com/membuddy/membuddy-api/internal/domain"
)

// ReviewScheduleStore defines the interface for review schedule persistence.
// Schedules are append-only in the current scope: there are no update or
// delete operations.
type ReviewScheduleStore interface {
	// Create saves a new review schedule and fills in the generated ID and
	// creation timestamp on the passed entity. The caller must have already
	// verified that the referenced memory item belongs to the same user.
	Create(ctx context.Context, schedule *domain.ReviewSchedule) error

	// ListForUser returns all review schedules owned by the given user,
	// oldest first.
	ListForUser(ctx context.Context, userID int64) ([]*domain.ReviewSchedule, error)
}
