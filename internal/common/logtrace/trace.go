package logtrace

import (
	"context"
)

type requestIDKeyType string

const requestIDKey requestIDKeyType = "requestId"

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID from the context, or returns
// an empty string when absent.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// IsTraceEnabled reports whether route tracing is enabled. Kept as a hook for
// debugging; off in normal operation.
func IsTraceEnabled() bool {
	return false
}
