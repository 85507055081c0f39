package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/membuddy/membuddy-api/internal/store"
)

func TestMapError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"}
	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "review_schedules_memory_item_id_fkey"}

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantNil bool
	}{
		{name: "nil passes through", err: nil, wantNil: true},
		{name: "no rows maps to not found", err: sql.ErrNoRows, wantIs: store.ErrNotFound},
		{name: "wrapped no rows maps to not found", err: fmt.Errorf("scan: %w", sql.ErrNoRows), wantIs: store.ErrNotFound},
		{name: "unique violation maps to duplicate", err: uniqueErr, wantIs: store.ErrDuplicate},
		{name: "foreign key violation maps to invalid entity", err: fkErr, wantIs: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}

	t.Run("unrecognized error passes through", func(t *testing.T) {
		err := errors.New("connection reset")
		assert.Equal(t, err, MapError(err))
	})
}

func TestViolationPredicates(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: uniqueViolationCode}
	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}

	assert.True(t, IsUniqueViolation(uniqueErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", uniqueErr)))
	assert.False(t, IsUniqueViolation(fkErr))
	assert.False(t, IsUniqueViolation(errors.New("boom")))

	assert.True(t, IsForeignKeyViolation(fkErr))
	assert.False(t, IsForeignKeyViolation(uniqueErr))
	assert.False(t, IsForeignKeyViolation(nil))
}

// fakeResult implements sql.Result for CheckRowsAffected tests.
type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	notFound := store.ErrMemoryItemNotFound

	t.Run("rows affected", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, notFound))
	})

	t.Run("zero rows returns not found", func(t *testing.T) {
		assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}, notFound), notFound)
	})

	t.Run("driver error is wrapped", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{err: errors.New("unsupported")}, notFound)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, notFound)
	})
}
