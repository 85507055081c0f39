package shared_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membuddy/membuddy-api/internal/api/shared"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	shared.RespondWithJSON(rr, req, http.StatusOK, map[string]string{"status": "success"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Run("includes trace id when present", func(t *testing.T) {
		ctx := shared.SetTraceID(context.Background())
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		rr := httptest.NewRecorder()

		shared.RespondWithError(rr, req, http.StatusBadRequest, "bad input")

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "bad input", resp.Error)
		assert.Equal(t, shared.GetTraceID(ctx), resp.TraceID)
	})

	t.Run("omits trace id when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		shared.RespondWithError(rr, req, http.StatusInternalServerError, "oops")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "trace_id")
	})
}

func TestRespondUnauthorized(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	shared.RespondUnauthorized(rr, req, "Could not validate credentials")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.Contains(t, rr.Body.String(), "Could not validate credentials")
}

func TestTraceIDContext(t *testing.T) {
	ctx := shared.SetTraceID(context.Background())

	traceID := shared.GetTraceID(ctx)
	assert.NotEmpty(t, traceID)

	// A second context gets a distinct ID.
	other := shared.SetTraceID(context.Background())
	assert.NotEqual(t, traceID, shared.GetTraceID(other))

	assert.Empty(t, shared.GetTraceID(context.Background()))
}
