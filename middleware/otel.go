package middleware

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/mcp-core/protocol"
)

const instrumentationName = "github.com/felixgeelhaar/mcp-core"

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*otelConfig)

type otelConfig struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string
	skipMethods    map[string]bool
}

// WithTracerProvider sets a custom tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *otelConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets a custom meter provider.
func WithMeterProvider(mp metric.MeterProvider) OTelOption {
	return func(c *otelConfig) {
		c.meterProvider = mp
	}
}

// WithOTelServiceName sets the service name for telemetry.
func WithOTelServiceName(name string) OTelOption {
	return func(c *otelConfig) {
		c.serviceName = name
	}
}

// WithOTelSkipMethods specifies methods to skip for tracing.
func WithOTelSkipMethods(methods ...string) OTelOption {
	return func(c *otelConfig) {
		for _, m := range methods {
			c.skipMethods[m] = true
		}
	}
}

// OTel returns middleware that adds OpenTelemetry tracing and metrics.
// It creates a span per request and records request counts and latency.
func OTel(opts ...OTelOption) Middleware {
	cfg := &otelConfig{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		serviceName:    "mcp-core",
		skipMethods:    make(map[string]bool),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tracer := cfg.tracerProvider.Tracer(instrumentationName)
	meter := cfg.meterProvider.Meter(instrumentationName)

	requestCounter, _ := meter.Int64Counter(
		"mcp.server.requests",
		metric.WithDescription("Total number of MCP requests"),
		metric.WithUnit("{request}"),
	)
	requestDuration, _ := meter.Float64Histogram(
		"mcp.server.request.duration",
		metric.WithDescription("Duration of MCP requests"),
		metric.WithUnit("ms"),
	)
	errorCounter, _ := meter.Int64Counter(
		"mcp.server.errors",
		metric.WithDescription("Total number of MCP errors"),
		metric.WithUnit("{error}"),
	)

	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req *protocol.Request) (*protocol.Response, error) {
			if cfg.skipMethods[req.Method] {
				return next(ctx, req)
			}

			ctx, span := tracer.Start(ctx, "mcp."+req.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("mcp.method", req.Method),
					attribute.String("service.name", cfg.serviceName),
				),
			)
			defer span.End()

			if reqID := RequestIDFromContext(ctx); reqID != "" {
				span.SetAttributes(attribute.String("mcp.request_id", reqID))
			}

			attrs := []attribute.KeyValue{
				attribute.String("mcp.method", req.Method),
				attribute.String("service.name", cfg.serviceName),
			}
			requestCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

			start := time.Now()
			resp, err := next(ctx, req)
			requestDuration.Record(ctx, float64(time.Since(start).Milliseconds()),
				metric.WithAttributes(attrs...))

			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())

				var perr *protocol.Error
				if errors.As(err, &perr) {
					span.SetAttributes(
						attribute.Int("mcp.error_code", perr.Code),
						attribute.String("mcp.error_category", string(perr.Category)),
					)
				}
				errorCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			case resp != nil && resp.Error != nil:
				span.SetStatus(codes.Error, resp.Error.Message)
				span.SetAttributes(attribute.Int("mcp.error_code", resp.Error.Code))
				errorCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
			default:
				span.SetStatus(codes.Ok, "")
			}

			return resp, err
		}
	}
}
