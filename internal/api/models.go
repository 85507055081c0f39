package api

import (
	"time"

	"github.com/membuddy/membuddy-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"omitempty,max=255"`
}

// UserResponse defines the user payload returned by registration.
// The password hash is never included.
type UserResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`

	// RefreshToken is a placeholder: refresh-token issuance and rotation
	// are not implemented, but the field is part of the wire format.
	RefreshToken string `json:"refresh_token"`
}

// GenerateRequest defines the payload for the memory aid generation endpoint.
type GenerateRequest struct {
	Content string `json:"content" validate:"required"`
}

// MemoryItemRequest defines the payload for creating or fully replacing a
// memory item.
type MemoryItemRequest struct {
	Content    string   `json:"content"     validate:"required"`
	MemoryAids []string `json:"memory_aids" validate:"required"`
}

// MemoryItemResponse defines the memory item payload returned by the API.
type MemoryItemResponse struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	Content    string     `json:"content"`
	MemoryAids []string   `json:"memory_aids"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// ReviewScheduleRequest defines the payload for scheduling a review.
type ReviewScheduleRequest struct {
	MemoryItemID int64     `json:"memory_item_id" validate:"required,gt=0"`
	ReviewDate   time.Time `json:"review_date"    validate:"required"`
	Completed    bool      `json:"completed"`
}

// ReviewScheduleResponse defines the review schedule payload returned by
// the API.
type ReviewScheduleResponse struct {
	ID           int64      `json:"id"`
	MemoryItemID int64      `json:"memory_item_id"`
	UserID       int64      `json:"user_id"`
	ReviewDate   time.Time  `json:"review_date"`
	Completed    bool       `json:"completed"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// itemToResponse converts a domain.MemoryItem to a MemoryItemResponse.
func itemToResponse(item *domain.MemoryItem) MemoryItemResponse {
	return MemoryItemResponse{
		ID:         item.ID,
		UserID:     item.UserID,
		Content:    item.Content,
		MemoryAids: item.MemoryAids,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

// itemsToResponse converts a slice of memory items, preserving order.
func itemsToResponse(items []*domain.MemoryItem) []MemoryItemResponse {
	responses := make([]MemoryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, itemToResponse(item))
	}
	return responses
}

// scheduleToResponse converts a domain.ReviewSchedule to a ReviewScheduleResponse.
func scheduleToResponse(schedule *domain.ReviewSchedule) ReviewScheduleResponse {
	return ReviewScheduleResponse{
		ID:           schedule.ID,
		MemoryItemID: schedule.MemoryItemID,
		UserID:       schedule.UserID,
		ReviewDate:   schedule.ReviewDate,
		Completed:    schedule.Completed,
		CreatedAt:    schedule.CreatedAt,
		UpdatedAt:    schedule.UpdatedAt,
	}
}

// schedulesToResponse converts a slice of review schedules, preserving order.
func schedulesToResponse(schedules []*domain.ReviewSchedule) []ReviewScheduleResponse {
	responses := make([]ReviewScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		responses = append(responses, scheduleToResponse(schedule))
	}
	return responses
}
