package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membuddy/membuddy-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		hashedPassword string
		fullName       string
		wantErr        error
	}{
		{
			name:           "valid user",
			email:          "alice@example.com",
			hashedPassword: "$2a$10$hashedpassword",
			fullName:       "Alice Example",
		},
		{
			name:           "valid user without full name",
			email:          "bob@example.com",
			hashedPassword: "$2a$10$hashedpassword",
		},
		{
			name:           "empty email",
			email:          "",
			hashedPassword: "$2a$10$hashedpassword",
			wantErr:        domain.ErrEmptyEmail,
		},
		{
			name:           "missing at sign",
			email:          "alice.example.com",
			hashedPassword: "$2a$10$hashedpassword",
			wantErr:        domain.ErrInvalidEmail,
		},
		{
			name:           "missing domain dot",
			email:          "alice@example",
			hashedPassword: "$2a$10$hashedpassword",
			wantErr:        domain.ErrInvalidEmail,
		},
		{
			name:           "nothing before at sign",
			email:          "@example.com",
			hashedPassword: "$2a$10$hashedpassword",
			wantErr:        domain.ErrInvalidEmail,
		},
		{
			name:           "empty hashed password",
			email:          "alice@example.com",
			hashedPassword: "",
			wantErr:        domain.ErrEmptyHashedPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := domain.NewUser(tt.email, tt.hashedPassword, tt.fullName)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.fullName, user.FullName)
			assert.True(t, user.IsActive, "new users should be active")
			assert.False(t, user.CreatedAt.IsZero())
			assert.Nil(t, user.UpdatedAt)
		})
	}
}

// TestUserJSONHidesPassword ensures the password hash never leaks through
// serialization.
func TestUserJSONHidesPassword(t *testing.T) {
	user, err := domain.NewUser("alice@example.com", "$2a$10$hashedpassword", "Alice")
	require.NoError(t, err)

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "hashedpassword")
	assert.NotContains(t, string(data), "HashedPassword")
}
