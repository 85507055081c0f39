package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/membuddy/membuddy-api/internal/api/shared"
	"github.com/membuddy/membuddy-api/internal/domain"
	"github.com/membuddy/membuddy-api/internal/generation"
	"github.com/membuddy/membuddy-api/internal/store"
)

// Listing defaults mirror the historical API behavior.
const (
	defaultListOffset = 0
	defaultListLimit  = 100
)

// MemoryHandler handles memory item and aid-generation HTTP requests.
// All routes require the auth middleware; every store call is scoped to
// the authenticated user's ID.
type MemoryHandler struct {
	itemStore store.MemoryItemStore
	generator generation.Generator
	validator *validator.Validate
}

// NewMemoryHandler creates a new MemoryHandler with the given dependencies.
func NewMemoryHandler(itemStore store.MemoryItemStore, generator generation.Generator) *MemoryHandler {
	return &MemoryHandler{
		itemStore: itemStore,
		generator: generator,
		validator: validator.New(),
	}
}

// Generate handles POST /api/memory/generate requests.
func (h *MemoryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	aids, err := h.generator.GenerateAids(r.Context(), req.Content)
	if err != nil {
		slog.Error("failed to generate memory aids", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate memory aids")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, aids)
}

// ListItems handles GET /api/memory/items requests.
// Supports skip/limit pagination over the caller's items in insertion order.
func (h *MemoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	skip := queryInt(r, "skip", defaultListOffset)
	limit := queryInt(r, "limit", defaultListLimit)

	items, err := h.itemStore.List(r.Context(), user.ID, skip, limit)
	if err != nil {
		slog.Error("failed to list memory items", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list memory items")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemsToResponse(items))
}

// CreateItem handles POST /api/memory/items requests.
func (h *MemoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeItemRequest(w, r)
	if !ok {
		return
	}

	item, err := domain.NewMemoryItem(user.ID, req.Content, req.MemoryAids)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid memory item: "+err.Error())
		return
	}

	if err := h.itemStore.Create(r.Context(), item); err != nil {
		slog.Error("failed to create memory item", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// GetItem handles GET /api/memory/items/{id} requests.
func (h *MemoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.itemStore.GetForUser(r.Context(), user.ID, id)
	if err != nil {
		h.respondItemError(w, r, err, user.ID, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(item))
}

// UpdateItem handles PUT /api/memory/items/{id} requests.
// The update is a full replace of content and memory aids.
func (h *MemoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	req, ok := h.decodeItemRequest(w, r)
	if !ok {
		return
	}

	item := &domain.MemoryItem{
		ID:         id,
		UserID:     user.ID,
		Content:    req.Content,
		MemoryAids: req.MemoryAids,
	}

	if err := h.itemStore.Update(r.Context(), user.ID, item); err != nil {
		h.respondItemError(w, r, err, user.ID, id)
		return
	}

	// Re-read so the response carries the stored timestamps.
	updated, err := h.itemStore.GetForUser(r.Context(), user.ID, id)
	if err != nil {
		h.respondItemError(w, r, err, user.ID, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, itemToResponse(updated))
}

// DeleteItem handles DELETE /api/memory/items/{id} requests.
func (h *MemoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.itemStore.Delete(r.Context(), user.ID, id); err != nil {
		h.respondItemError(w, r, err, user.ID, id)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "success"})
}

// decodeItemRequest decodes and validates a memory item payload, writing a
// 422 response and returning false on failure.
func (h *MemoryHandler) decodeItemRequest(w http.ResponseWriter, r *http.Request) (MemoryItemRequest, bool) {
	var req MemoryItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return req, false
	}

	return req, true
}

// respondItemError writes the response for a failed item store call,
// keeping not-found responses ownership-opaque.
func (h *MemoryHandler) respondItemError(w http.ResponseWriter, r *http.Request, err error, userID, itemID int64) {
	if errors.Is(err, store.ErrMemoryItemNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Memory item not found")
		return
	}
	slog.Error("memory item operation failed",
		"error", err,
		"user_id", userID,
		"item_id", itemID)
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
