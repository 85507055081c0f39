package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/membuddy/membuddy-api/internal/api/shared"
	"github.com/membuddy/membuddy-api/internal/domain"
	"github.com/membuddy/membuddy-api/internal/store"
)

// ReviewHandler handles review schedule HTTP requests.
type ReviewHandler struct {
	scheduleStore store.ReviewScheduleStore
	itemStore     store.MemoryItemStore
	validator     *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler with the given dependencies.
func NewReviewHandler(
	scheduleStore store.ReviewScheduleStore,
	itemStore store.MemoryItemStore,
) *ReviewHandler {
	return &ReviewHandler{
		scheduleStore: scheduleStore,
		itemStore:     itemStore,
		validator:     validator.New(),
	}
}

// CreateSchedule handles POST /api/review/schedule requests.
// The referenced memory item must exist and belong to the caller; a
// schedule for someone else's item is rejected with the same 404 the item
// itself would produce, and nothing is inserted.
func (h *ReviewHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req ReviewScheduleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	// Ownership check before insert.
	if _, err := h.itemStore.GetForUser(r.Context(), user.ID, req.MemoryItemID); err != nil {
		if errors.Is(err, store.ErrMemoryItemNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Memory item not found")
			return
		}
		slog.Error("failed to verify memory item ownership",
			"error", err,
			"user_id", user.ID,
			"memory_item_id", req.MemoryItemID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to schedule review")
		return
	}

	schedule, err := domain.NewReviewSchedule(user.ID, req.MemoryItemID, req.ReviewDate, req.Completed)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid review schedule: "+err.Error())
		return
	}

	if err := h.scheduleStore.Create(r.Context(), schedule); err != nil {
		if errors.Is(err, store.ErrMemoryItemNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Memory item not found")
			return
		}
		slog.Error("failed to create review schedule", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, scheduleToResponse(schedule))
}

// ListSchedules handles GET /api/review/schedule requests.
func (h *ReviewHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	schedules, err := h.scheduleStore.ListForUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("failed to list review schedules", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to list review schedules")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, schedulesToResponse(schedules))
}
