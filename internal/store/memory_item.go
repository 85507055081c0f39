package store

import (
	"context"

	"github.com/membuddy/membuddy-api/internal/domain"
)

// MemoryItemStore defines the interface for memory item persistence.
//
// Every operation is scoped by the owning user's ID. An item that exists
// but belongs to another user behaves exactly like a missing item:
// ErrMemoryItemNotFound, never a permission error.
type MemoryItemStore interface {
	// List returns the user's memory items in insertion order,
	// skipping offset items and returning at most limit.
	List(ctx context.Context, userID int64, offset, limit int) ([]*domain.MemoryItem, error)

	// Create saves a new memory item and fills in the generated ID and
	// creation timestamp on the passed entity.
	Create(ctx context.Context, item *domain.MemoryItem) error

	// GetForUser retrieves a memory item by ID, scoped to the given user.
	// Returns ErrMemoryItemNotFound if absent or owned by someone else.
	GetForUser(ctx context.Context, userID, id int64) (*domain.MemoryItem, error)

	// Update replaces the content and memory aids of an existing item,
	// scoped to the given user, and returns the updated row.
	// Returns ErrMemoryItemNotFound if absent or owned by someone else.
	Update(ctx context.Context, userID int64, item *domain.MemoryItem) error

	// Delete removes a memory item, scoped to the given user.
	// Returns ErrMemoryItemNotFound if absent or owned by someone else.
	Delete(ctx context.Context, userID, id int64) error
}
