package middleware

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

func TestRequestID(t *testing.T) {
	t.Run("injects an ID", func(t *testing.T) {
		var got string
		handler := RequestID()(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			got = RequestIDFromContext(ctx)
			return &protocol.Response{}, nil
		})

		_, _ = handler(context.Background(), &protocol.Request{})
		if got == "" {
			t.Error("expected a request ID to be injected")
		}
	})

	t.Run("preserves existing ID", func(t *testing.T) {
		var got string
		handler := RequestID()(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			got = RequestIDFromContext(ctx)
			return &protocol.Response{}, nil
		})

		ctx := ContextWithRequestID(context.Background(), "fixed-id")
		_, _ = handler(ctx, &protocol.Request{})
		if got != "fixed-id" {
			t.Errorf("request ID = %q, want %q", got, "fixed-id")
		}
	})

	t.Run("custom generator", func(t *testing.T) {
		var got string
		handler := RequestIDWithGenerator(func() string { return "gen-1" })(
			func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
				got = RequestIDFromContext(ctx)
				return &protocol.Response{}, nil
			})

		_, _ = handler(context.Background(), &protocol.Request{})
		if got != "gen-1" {
			t.Errorf("request ID = %q, want %q", got, "gen-1")
		}
	})
}
