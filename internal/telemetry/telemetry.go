// Package telemetry records user actions as OpenTelemetry spans.
//
// Export is opt-in: with OTEL_EXPORTER_OTLP_ENDPOINT unset the provider is a
// no-op and nothing leaves the process.
package telemetry

import (
	"context"
	"os"

	"folio/internal/site"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "folio/ui"

// Span names, one per user action.
const (
	SpanNavigate   = "folio.navigate"
	SpanSelectPost = "folio.select_post"
	SpanClearPost  = "folio.clear_post"
)

// Provider owns the tracer provider and its shutdown.
type Provider struct {
	tracer   oteltrace.Tracer
	shutdown func(context.Context) error
	enabled  bool
}

// New creates an OTLP-exporting provider if OTEL_EXPORTER_OTLP_ENDPOINT is
// set, and a no-op provider otherwise.
func New(ctx context.Context, serviceName string) (*Provider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return Disabled(), nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return NewWithProcessor(serviceName, sdktrace.NewBatchSpanProcessor(exporter)), nil
}

// NewWithProcessor builds an SDK provider around sp. Tests pass a
// tracetest.SpanRecorder.
func NewWithProcessor(serviceName string, sp sdktrace.SpanProcessor) *Provider {
	if serviceName == "" {
		serviceName = "folio"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sp),
		sdktrace.WithResource(res),
	)
	return &Provider{
		tracer:   tp.Tracer(instrumentationName),
		shutdown: tp.Shutdown,
		enabled:  true,
	}
}

// Disabled returns a provider whose spans are dropped.
func Disabled() *Provider {
	return &Provider{
		tracer:   noop.NewTracerProvider().Tracer(instrumentationName),
		shutdown: func(context.Context) error { return nil },
	}
}

// Enabled reports whether spans are exported anywhere.
func (p *Provider) Enabled() bool { return p != nil && p.enabled }

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.shutdown(ctx)
}

// Navigated records a page change.
func (p *Provider) Navigated(from, to site.Page) {
	p.record(SpanNavigate,
		attribute.String("folio.page.from", from.String()),
		attribute.String("folio.page.to", to.String()),
	)
}

// SelectedPost records a post being opened.
func (p *Provider) SelectedPost(post site.Post) {
	p.record(SpanSelectPost,
		attribute.String("folio.post.id", post.ID),
		attribute.String("folio.post.title", post.Title),
	)
}

// ClearedPost records a return to the blog listing. prev is the post that
// was open, if any.
func (p *Provider) ClearedPost(prev *site.Post) {
	var attrs []attribute.KeyValue
	if prev != nil {
		attrs = append(attrs, attribute.String("folio.post.id", prev.ID))
	}
	p.record(SpanClearPost, attrs...)
}

func (p *Provider) record(name string, attrs ...attribute.KeyValue) {
	if p == nil || p.tracer == nil {
		return
	}
	_, span := p.tracer.Start(context.Background(), name, oteltrace.WithAttributes(attrs...))
	span.End()
}
