package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membuddy/membuddy-api/internal/domain"
)

func TestNewReviewSchedule(t *testing.T) {
	reviewDate := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		userID       int64
		memoryItemID int64
		reviewDate   time.Time
		completed    bool
		wantErr      error
	}{
		{
			name:         "valid schedule",
			userID:       1,
			memoryItemID: 2,
			reviewDate:   reviewDate,
		},
		{
			name:         "valid completed schedule",
			userID:       1,
			memoryItemID: 2,
			reviewDate:   reviewDate,
			completed:    true,
		},
		{
			name:         "missing user ID",
			userID:       0,
			memoryItemID: 2,
			reviewDate:   reviewDate,
			wantErr:      domain.ErrEmptyScheduleUserID,
		},
		{
			name:         "missing memory item ID",
			userID:       1,
			memoryItemID: 0,
			reviewDate:   reviewDate,
			wantErr:      domain.ErrEmptyScheduleItemID,
		},
		{
			name:         "zero review date",
			userID:       1,
			memoryItemID: 2,
			wantErr:      domain.ErrZeroReviewDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := domain.NewReviewSchedule(tt.userID, tt.memoryItemID, tt.reviewDate, tt.completed)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, schedule)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, schedule)
			assert.Equal(t, tt.userID, schedule.UserID)
			assert.Equal(t, tt.memoryItemID, schedule.MemoryItemID)
			assert.True(t, schedule.ReviewDate.Equal(tt.reviewDate))
			assert.Equal(t, tt.completed, schedule.Completed)
			assert.False(t, schedule.CreatedAt.IsZero())
		})
	}
}
