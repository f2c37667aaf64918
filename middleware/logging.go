package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// Logging returns middleware that logs request details with zap.
// Successful requests are logged at info level, errors at error level.
func Logging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.Duration("duration", time.Since(start)),
			}
			if requestID := RequestIDFromContext(ctx); requestID != "" {
				fields = append(fields, zap.String("request_id", requestID))
			}

			if err != nil {
				logger.Error("request failed", append(fields, zap.Error(err))...)
			} else {
				logger.Info("request completed", fields...)
			}

			return resp, err
		}
	}
}
