package store

import (
	"context"

	"github.com/membuddy/membuddy-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// No update or delete operations are exposed: user records are written
// once at registration and only read afterwards.
type UserStore interface {
	// Create saves a new user to the store and fills in the generated ID
	// and creation timestamp on the passed entity.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
