package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const requestIDKey contextKey = "requestID"

// RequestID returns middleware that injects a unique request ID into the
// context. If a request ID already exists in the context, it is preserved.
func RequestID() Middleware {
	return RequestIDWithGenerator(uuid.NewString)
}

// RequestIDWithGenerator returns middleware that uses a custom ID generator.
func RequestIDWithGenerator(generator func() string) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			if existing := RequestIDFromContext(ctx); existing != "" {
				return next(ctx, req)
			}

			ctx = ContextWithRequestID(ctx, generator())
			return next(ctx, req)
		}
	}
}

// RequestIDFromContext returns the request ID from the context, or empty
// string if not set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ContextWithRequestID returns a new context with the request ID set.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}
