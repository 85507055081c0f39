package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/membuddy/membuddy-api/internal/domain"
	"github.com/membuddy/membuddy-api/internal/platform/logger"
	"github.com/membuddy/membuddy-api/internal/store"
)

// MemoryItemStore implements the store.MemoryItemStore interface using a
// PostgreSQL database as the storage backend.
//
// Every query filters on user_id so that items owned by other users are
// indistinguishable from missing ones.
type MemoryItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMemoryItemStore creates a new PostgreSQL implementation of the
// MemoryItemStore interface.
func NewMemoryItemStore(db store.DBTX, log *slog.Logger) *MemoryItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &MemoryItemStore{
		db:     db,
		logger: log.With(slog.String("component", "memory_item_store")),
	}
}

// Ensure MemoryItemStore implements store.MemoryItemStore interface
var _ store.MemoryItemStore = (*MemoryItemStore)(nil)

// List implements store.MemoryItemStore.List
// Items are returned in insertion order (ascending ID).
func (s *MemoryItemStore) List(
	ctx context.Context,
	userID int64,
	offset, limit int,
) ([]*domain.MemoryItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 100 // Default page size
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, content, memory_aids, created_at, updated_at
		FROM memory_items
		WHERE user_id = $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		log.Error("failed to list memory items",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	items := []*domain.MemoryItem{}
	for rows.Next() {
		item, err := scanMemoryItem(rows)
		if err != nil {
			log.Error("failed to scan memory item row",
				slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed memory items",
		slog.Int64("user_id", userID),
		slog.Int("count", len(items)))
	return items, nil
}

// Create implements store.MemoryItemStore.Create
func (s *MemoryItemStore) Create(ctx context.Context, item *domain.MemoryItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("memory item validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", item.UserID))
		return err
	}

	aids, err := encodeMemoryAids(item.MemoryAids)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO memory_items (user_id, content, memory_aids, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err = s.db.QueryRowContext(
		ctx,
		query,
		item.UserID,
		item.Content,
		aids,
		item.CreatedAt,
	).Scan(&item.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during memory item creation",
				slog.String("error", err.Error()),
				slog.Int64("user_id", item.UserID))
			return MapError(err)
		}

		log.Error("failed to create memory item",
			slog.String("error", err.Error()),
			slog.Int64("user_id", item.UserID))
		return err
	}

	log.Info("memory item created successfully",
		slog.Int64("item_id", item.ID),
		slog.Int64("user_id", item.UserID))
	return nil
}

// GetForUser implements store.MemoryItemStore.GetForUser
// Returns store.ErrMemoryItemNotFound if the item is absent or owned by
// another user.
func (s *MemoryItemStore) GetForUser(
	ctx context.Context,
	userID, id int64,
) (*domain.MemoryItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, content, memory_aids, created_at, updated_at
		FROM memory_items
		WHERE id = $1 AND user_id = $2
	`

	item, err := scanMemoryItem(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("memory item not found",
				slog.Int64("item_id", id),
				slog.Int64("user_id", userID))
			return nil, store.ErrMemoryItemNotFound
		}
		log.Error("failed to get memory item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, err
	}

	return item, nil
}

// Update implements store.MemoryItemStore.Update
// It fully replaces the content and memory aids of the item and refreshes
// the updated_at timestamp on the passed entity.
// Returns store.ErrMemoryItemNotFound if the item is absent or owned by
// another user.
func (s *MemoryItemStore) Update(
	ctx context.Context,
	userID int64,
	item *domain.MemoryItem,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("memory item validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("item_id", item.ID))
		return err
	}

	aids, err := encodeMemoryAids(item.MemoryAids)
	if err != nil {
		return err
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE memory_items
		SET content = $1, memory_aids = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`

	result, err := s.db.ExecContext(ctx, query, item.Content, aids, updatedAt, item.ID, userID)
	if err != nil {
		log.Error("failed to update memory item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", item.ID))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrMemoryItemNotFound); err != nil {
		log.Debug("memory item not found for update",
			slog.Int64("item_id", item.ID),
			slog.Int64("user_id", userID))
		return err
	}

	item.UpdatedAt = &updatedAt

	log.Info("memory item updated successfully",
		slog.Int64("item_id", item.ID),
		slog.Int64("user_id", userID))
	return nil
}

// Delete implements store.MemoryItemStore.Delete
// Returns store.ErrMemoryItemNotFound if the item is absent or owned by
// another user.
func (s *MemoryItemStore) Delete(ctx context.Context, userID, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM memory_items
		WHERE id = $1 AND user_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		log.Error("failed to delete memory item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return err
	}

	if err := CheckRowsAffected(result, store.ErrMemoryItemNotFound); err != nil {
		log.Debug("memory item not found for delete",
			slog.Int64("item_id", id),
			slog.Int64("user_id", userID))
		return err
	}

	log.Info("memory item deleted successfully",
		slog.Int64("item_id", id),
		slog.Int64("user_id", userID))
	return nil
}

// scanMemoryItem scans a full memory item row, decoding the serialized
// memory aids column.
func scanMemoryItem(row rowScanner) (*domain.MemoryItem, error) {
	var item domain.MemoryItem
	var aids string
	var updatedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Content,
		&aids,
		&item.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.MemoryAids, err = decodeMemoryAids(aids)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		item.UpdatedAt = &updatedAt.Time
	}

	return &item, nil
}
