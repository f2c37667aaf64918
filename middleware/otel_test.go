package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

func TestOTel(t *testing.T) {
	t.Run("creates span for request", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer tp.Shutdown(context.Background())

		handler := OTel(WithTracerProvider(tp))(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			return &protocol.Response{ID: req.ID}, nil
		})

		req := &protocol.Request{ID: json.RawMessage("1"), Method: "resources/read"}
		if _, err := handler(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		spans := exporter.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if spans[0].Name != "mcp.resources/read" {
			t.Errorf("span name = %q, want %q", spans[0].Name, "mcp.resources/read")
		}
	})

	t.Run("records error with category", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer tp.Shutdown(context.Background())

		handler := OTel(WithTracerProvider(tp))(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			return nil, protocol.NewNotFound("resource not found: ghost:///x")
		})

		_, err := handler(context.Background(), &protocol.Request{Method: "resources/read"})
		if err == nil {
			t.Fatal("expected error")
		}

		spans := exporter.GetSpans()
		if len(spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(spans))
		}
		if len(spans[0].Events) == 0 {
			t.Error("expected error event on span")
		}
	})

	t.Run("skips configured methods", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer tp.Shutdown(context.Background())

		handler := OTel(WithTracerProvider(tp), WithOTelSkipMethods("ping"))(
			func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
				return &protocol.Response{}, nil
			})

		_, _ = handler(context.Background(), &protocol.Request{Method: "ping"})

		if len(exporter.GetSpans()) != 0 {
			t.Errorf("expected no spans for skipped method, got %d", len(exporter.GetSpans()))
		}
	})

	t.Run("plain errors are also recorded", func(t *testing.T) {
		exporter := tracetest.NewInMemoryExporter()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer tp.Shutdown(context.Background())

		handler := OTel(WithTracerProvider(tp))(func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			return nil, errors.New("plain failure")
		})

		_, _ = handler(context.Background(), &protocol.Request{Method: "tools/call"})

		if len(exporter.GetSpans()) != 1 {
			t.Fatalf("expected 1 span, got %d", len(exporter.GetSpans()))
		}
	})
}
