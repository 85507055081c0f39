package domain

import (
	"errors"
	"time"
)

// Common validation errors for MemoryItem
var (
	ErrEmptyItemUserID  = errors.New("memory item user ID cannot be empty")
	ErrEmptyItemContent = errors.New("memory item content cannot be empty")
)

// MemoryItem represents a piece of study material saved by a user together
// with the mnemonic aids generated for it. MemoryAids is stored as a JSON
// array in the database and must round-trip losslessly.
type MemoryItem struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Content    string     `json:"content"`
	MemoryAids []string   `json:"memory_aids"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// NewMemoryItem creates a new MemoryItem owned by the given user.
// Returns an error if validation fails.
func NewMemoryItem(userID int64, content string, memoryAids []string) (*MemoryItem, error) {
	item := &MemoryItem{
		UserID:     userID,
		Content:    content,
		MemoryAids: memoryAids,
		CreatedAt:  time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the MemoryItem has valid data.
func (m *MemoryItem) Validate() error {
	if m.UserID <= 0 {
		return ErrEmptyItemUserID
	}

	if m.Content == "" {
		return ErrEmptyItemContent
	}

	return nil
}
