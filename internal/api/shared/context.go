// Package shared holds the helpers common to all API handlers: context
// keys, JSON responders, and request decoding.
package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type used for context values set by the API layer.
type ContextKey string

// Context keys for various values
const (
	// CurrentUserContextKey is the context key under which the auth
	// middleware stores the authenticated *domain.User.
	CurrentUserContextKey ContextKey = "currentUser"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID adds a freshly generated trace ID to the context.
// This is used for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
