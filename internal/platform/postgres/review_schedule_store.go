package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/membuddy/membuddy-api/internal/domain"
	"github.com/membuddy/membuddy-api/internal/platform/logger"
	"github.com/membuddy/membuddy-api/internal/store"
)

// ReviewScheduleStore implements the store.ReviewScheduleStore interface
// using a PostgreSQL database as the storage backend.
type ReviewScheduleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReviewScheduleStore creates a new PostgreSQL implementation of the
// ReviewScheduleStore interface.
func NewReviewScheduleStore(db store.DBTX, log *slog.Logger) *ReviewScheduleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ReviewScheduleStore{
		db:     db,
		logger: log.With(slog.String("component", "review_schedule_store")),
	}
}

// Ensure ReviewScheduleStore implements store.ReviewScheduleStore interface
var _ store.ReviewScheduleStore = (*ReviewScheduleStore)(nil)

// Create implements store.ReviewScheduleStore.Create
func (s *ReviewScheduleStore) Create(ctx context.Context, schedule *domain.ReviewSchedule) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := schedule.Validate(); err != nil {
		log.Warn("review schedule validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("user_id", schedule.UserID))
		return err
	}

	query := `
		INSERT INTO review_schedules (memory_item_id, user_id, review_date, completed, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		schedule.MemoryItemID,
		schedule.UserID,
		schedule.ReviewDate,
		schedule.Completed,
		schedule.CreatedAt,
	).Scan(&schedule.ID)

	if err != nil {
		// The referenced item was checked before insert, but a concurrent
		// delete can still trip the foreign key.
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during review schedule creation",
				slog.String("error", err.Error()),
				slog.Int64("memory_item_id", schedule.MemoryItemID))
			return store.ErrMemoryItemNotFound
		}

		log.Error("failed to create review schedule",
			slog.String("error", err.Error()),
			slog.Int64("user_id", schedule.UserID))
		return err
	}

	log.Info("review schedule created successfully",
		slog.Int64("schedule_id", schedule.ID),
		slog.Int64("memory_item_id", schedule.MemoryItemID),
		slog.Int64("user_id", schedule.UserID))
	return nil
}

// ListForUser implements store.ReviewScheduleStore.ListForUser
func (s *ReviewScheduleStore) ListForUser(
	ctx context.Context,
	userID int64,
) ([]*domain.ReviewSchedule, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, memory_item_id, user_id, review_date, completed, created_at, updated_at
		FROM review_schedules
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list review schedules",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	schedules := []*domain.ReviewSchedule{}
	for rows.Next() {
		var schedule domain.ReviewSchedule
		var updatedAt sql.NullTime

		err := rows.Scan(
			&schedule.ID,
			&schedule.MemoryItemID,
			&schedule.UserID,
			&schedule.ReviewDate,
			&schedule.Completed,
			&schedule.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			log.Error("failed to scan review schedule row",
				slog.String("error", err.Error()))
			return nil, err
		}

		if updatedAt.Valid {
			schedule.UpdatedAt = &updatedAt.Time
		}
		schedules = append(schedules, &schedule)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("listed review schedules",
		slog.Int64("user_id", userID),
		slog.Int("count", len(schedules)))
	return schedules, nil
}
