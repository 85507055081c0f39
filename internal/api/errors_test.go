package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/membuddy/membuddy-api/internal/api"
	"github.com/membuddy/membuddy-api/internal/service/auth"
	"github.com/membuddy/membuddy-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "missing token", err: auth.ErrMissingToken, want: http.StatusUnauthorized},
		{name: "user not found", err: store.ErrUserNotFound, want: http.StatusNotFound},
		{name: "memory item not found", err: store.ErrMemoryItemNotFound, want: http.StatusNotFound},
		{name: "review schedule not found", err: store.ErrReviewScheduleNotFound, want: http.StatusNotFound},
		{name: "duplicate email", err: store.ErrEmailExists, want: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", store.ErrMemoryItemNotFound), want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: "An unexpected error occurred"},
		{name: "invalid token", err: auth.ErrInvalidToken, want: "Could not validate credentials"},
		{name: "duplicate email", err: store.ErrEmailExists, want: "Email already registered"},
		{name: "memory item not found", err: store.ErrMemoryItemNotFound, want: "Memory item not found"},
		{name: "internal details hidden", err: errors.New("pq: connection refused on 10.0.0.3"), want: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.GetSafeErrorMessage(tt.err))
		})
	}
}
