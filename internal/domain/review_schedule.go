package domain

import (
	"errors"
	"time"
)

// Common validation errors for ReviewSchedule
var (
	ErrEmptyScheduleUserID = errors.New("review schedule user ID cannot be empty")
	ErrEmptyScheduleItemID = errors.New("review schedule memory item ID cannot be empty")
	ErrZeroReviewDate      = errors.New("review date cannot be zero")
)

// ReviewSchedule represents a planned review of a memory item. It references
// the item by ID; the referenced item must belong to the same user, which is
// enforced at creation time by the review service, not by this type.
type ReviewSchedule struct {
	ID           int64      `json:"id"`
	MemoryItemID int64      `json:"memory_item_id"`
	UserID       int64      `json:"user_id"`
	ReviewDate   time.Time  `json:"review_date"`
	Completed    bool       `json:"completed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// NewReviewSchedule creates a new ReviewSchedule for the given user and item.
// Returns an error if validation fails.
func NewReviewSchedule(userID, memoryItemID int64, reviewDate time.Time, completed bool) (*ReviewSchedule, error) {
	schedule := &ReviewSchedule{
		MemoryItemID: memoryItemID,
		UserID:       userID,
		ReviewDate:   reviewDate,
		Completed:    completed,
		CreatedAt:    time.Now().UTC(),
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return schedule, nil
}

// Validate checks if the ReviewSchedule has valid data.
func (s *ReviewSchedule) Validate() error {
	if s.UserID <= 0 {
		return ErrEmptyScheduleUserID
	}

	if s.MemoryItemID <= 0 {
		return ErrEmptyScheduleItemID
	}

	if s.ReviewDate.IsZero() {
		return ErrZeroReviewDate
	}

	return nil
}
