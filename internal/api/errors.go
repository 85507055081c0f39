package api

import (
	"errors"
	"net/http"

	"github.com/membuddy/membuddy-api/internal/service/auth"
	"github.com/membuddy/membuddy-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
//
// Note the ownership rule: a resource owned by another user surfaces as
// store.ErrNotFound and therefore 404, never 403.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors (absent or not owned)
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate email registers as a plain bad request on this API.
	case errors.Is(err, store.ErrEmailExists):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Could not validate credentials"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrMemoryItemNotFound):
		return "Memory item not found"

	case errors.Is(err, store.ErrReviewScheduleNotFound):
		return "Review schedule not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}
