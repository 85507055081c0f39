package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/membuddy/membuddy-api/internal/api"
	"github.com/membuddy/membuddy-api/internal/api/shared"
	"github.com/membuddy/membuddy-api/internal/domain"
)

// testUser builds a user the way the auth middleware would deliver one.
func testUser(id int64, email string) *domain.User {
	return &domain.User{
		ID:             id,
		Email:          email,
		HashedPassword: "$2a$10$hashedpassword",
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}
}

// asUser injects the given user into the request context, standing in for
// the auth middleware.
func asUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), shared.CurrentUserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// newMemoryRouter mounts the memory routes behind a fake authenticated user.
func newMemoryRouter(handler *api.MemoryHandler, user *domain.User) http.Handler {
	r := chi.NewRouter()
	r.Use(asUser(user))
	r.Post("/api/memory/generate", handler.Generate)
	r.Get("/api/memory/items", handler.ListItems)
	r.Post("/api/memory/items", handler.CreateItem)
	r.Get("/api/memory/items/{id}", handler.GetItem)
	r.Put("/api/memory/items/{id}", handler.UpdateItem)
	r.Delete("/api/memory/items/{id}", handler.DeleteItem)
	return r
}

// newReviewRouter mounts the review routes behind a fake authenticated user.
func newReviewRouter(handler *api.ReviewHandler, user *domain.User) http.Handler {
	r := chi.NewRouter()
	r.Use(asUser(user))
	r.Post("/api/review/schedule", handler.CreateSchedule)
	r.Get("/api/review/schedule", handler.ListSchedules)
	return r
}

// doJSON performs a request with a JSON body against the handler.
func doJSON(t *testing.T, handler http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// decodeBody unmarshals a recorded JSON response body into out.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
}
