package trace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope for stopwatch spans.
const TracerName = "stopwatches/stopwatch"

// Provider owns the OTLP exporter pipeline. A nil *Provider is valid and
// disabled.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// NewOTLPProvider creates an OTLP/HTTP exporter for endpoint (host:port).
// Returns nil if endpoint is empty (disabled).
func NewOTLPProvider(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)
	return NewProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// NewProvider wraps a TracerProvider built from opts. Tests pass a span
// processor here instead of an exporter.
func NewProvider(opts ...sdktrace.TracerProviderOption) *Provider {
	return &Provider{provider: sdktrace.NewTracerProvider(opts...)}
}

// Tracer returns the stopwatch tracer, or nil when disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return nil
	}
	return p.provider.Tracer(TracerName)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
