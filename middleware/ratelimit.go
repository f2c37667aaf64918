package middleware

import (
	"context"
	"time"

	"github.com/felixgeelhaar/fortify/ratelimit"
	"go.uber.org/zap"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

// RateLimitOption configures the rate limiter.
type RateLimitOption func(*rateLimitConfig)

type rateLimitConfig struct {
	keyFunc func(*protocol.Request) string
	logger  *zap.Logger
}

// WithRateLimitKeyFunc sets a function to extract a rate limit key from
// requests, enabling per-client or per-method limits.
func WithRateLimitKeyFunc(fn func(*protocol.Request) string) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.keyFunc = fn
	}
}

// WithRateLimitLogger sets the logger for rate limit events.
func WithRateLimitLogger(l *zap.Logger) RateLimitOption {
	return func(o *rateLimitConfig) {
		o.logger = l
	}
}

// RateLimit returns middleware that limits request rate using a token
// bucket. The rate is specified as requests per second; burst allows
// short spikes above it.
func RateLimit(rate int, burst int, opts ...RateLimitOption) Middleware {
	cfg := &rateLimitConfig{
		keyFunc: func(_ *protocol.Request) string { return "global" },
	}
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := ratelimit.New(&ratelimit.Config{
		Rate:     rate,
		Burst:    burst,
		Interval: time.Second,
	})

	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			key := cfg.keyFunc(req)

			if !limiter.Allow(ctx, key) {
				if cfg.logger != nil {
					cfg.logger.Warn("rate limit exceeded",
						zap.String("method", req.Method),
						zap.String("key", key),
					)
				}
				return nil, protocol.NewRateLimited("rate limit exceeded")
			}

			return next(ctx, req)
		}
	}
}

// RateLimitByMethod returns rate limiting middleware with per-method limits.
func RateLimitByMethod(rate int, burst int, opts ...RateLimitOption) Middleware {
	allOpts := append([]RateLimitOption{
		WithRateLimitKeyFunc(func(req *protocol.Request) string {
			return req.Method
		}),
	}, opts...)
	return RateLimit(rate, burst, allOpts...)
}
