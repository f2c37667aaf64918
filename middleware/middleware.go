package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// HandlerFunc is the signature for request handlers.
type HandlerFunc func(ctx context.Context, req *protocol.Request) (*protocol.Response, error)

// Middleware wraps a handler with additional behavior.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain composes multiple middleware into a single middleware.
// Middleware are applied in order, so Chain(m1, m2, m3) results in
// m1 wrapping m2 wrapping m3 wrapping the final handler.
func Chain(middlewares ...Middleware) Middleware {
	return func(final HandlerFunc) HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}

// DefaultStack returns the recommended production middleware stack.
// This includes panic recovery, request ID injection, and logging.
func DefaultStack(logger *zap.Logger) []Middleware {
	return []Middleware{
		Recover(),
		RequestID(),
		Logging(logger),
	}
}

// DefaultStackWithTimeout returns the default stack with a timeout middleware.
func DefaultStackWithTimeout(logger *zap.Logger, timeout time.Duration) []Middleware {
	return []Middleware{
		Recover(),
		RequestID(),
		Timeout(timeout),
		Logging(logger),
	}
}
