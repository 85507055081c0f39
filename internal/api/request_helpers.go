package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/membuddy/membuddy-api/internal/api/middleware"
	"github.com/membuddy/membuddy-api/internal/api/shared"
	"github.com/membuddy/membuddy-api/internal/domain"
)

// currentUser extracts the authenticated user placed in the context by the
// auth middleware. It writes a 401 response and returns false when absent;
// that only happens if a handler is wired up without the middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.GetUser(r)
	if !ok || user == nil {
		shared.RespondUnauthorized(w, r, "Could not validate credentials")
		return nil, false
	}
	return user, true
}

// pathID extracts a positive integer ID from the named URL path parameter.
// It writes a 404 response and returns false when the parameter is missing
// or malformed: a garbage ID addresses nothing, same as an unknown one.
func pathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Memory item not found")
		return 0, false
	}
	return id, true
}

// queryInt parses an optional non-negative integer query parameter,
// returning fallback when absent or malformed.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
