package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/membuddy/membuddy-api/internal/store"
)

func TestErrorTaxonomy(t *testing.T) {
	// Entity-specific errors unwrap to their category sentinel.
	assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrMemoryItemNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrReviewScheduleNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrEmailExists, store.ErrDuplicate)

	// Categories stay distinct.
	assert.NotErrorIs(t, store.ErrEmailExists, store.ErrNotFound)
	assert.NotErrorIs(t, store.ErrUserNotFound, store.ErrDuplicate)
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantNotFound  bool
		wantDuplicate bool
	}{
		{name: "not found sentinel", err: store.ErrNotFound, wantNotFound: true},
		{name: "memory item not found", err: store.ErrMemoryItemNotFound, wantNotFound: true},
		{name: "wrapped not found", err: fmt.Errorf("get: %w", store.ErrUserNotFound), wantNotFound: true},
		{name: "email exists", err: store.ErrEmailExists, wantDuplicate: true},
		{name: "wrapped duplicate", err: fmt.Errorf("insert: %w", store.ErrEmailExists), wantDuplicate: true},
		{name: "unrelated error", err: errors.New("boom")},
		{name: "nil error", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNotFound, store.IsNotFoundError(tt.err))
			assert.Equal(t, tt.wantDuplicate, store.IsDuplicateError(tt.err))
		})
	}
}
