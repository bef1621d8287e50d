package trace

import (
	"context"
	"encoding/hex"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// OTLPExporter exports recorded events as spans to an OTLP endpoint
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an exporter for endpoint (host:port, plain HTTP).
// Returns nil if endpoint is empty (disabled).
func NewOTLPExporter(ctx context.Context, endpoint, serviceName string) (*OTLPExporter, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	if serviceName == "" {
		serviceName = "savings"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return newExporter(sdktrace.WithBatcher(exporter), sdktrace.WithResource(res)), nil
}

func newExporter(opts ...sdktrace.TracerProviderOption) *OTLPExporter {
	provider := sdktrace.NewTracerProvider(opts...)
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer("savings/calculator"),
	}
}

// ExportEvent emits ev as a zero-length span in the session's trace.
func (e *OTLPExporter) ExportEvent(ctx context.Context, ev Event) error {
	if e == nil {
		return nil
	}

	traceID, err := hexToTraceID(ev.SessionID)
	if err != nil {
		return err
	}

	// A span context is only valid with a span ID; the session's virtual
	// root reuses the low half of the trace ID.
	var rootID oteltrace.SpanID
	copy(rootID[:], traceID[8:])
	parent := oteltrace.ContextWithRemoteSpanContext(ctx, oteltrace.NewSpanContext(oteltrace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     rootID,
		TraceFlags: oteltrace.FlagsSampled,
		Remote:     true,
	}))

	_, span := e.tracer.Start(parent, "savings."+string(ev.Type), oteltrace.WithTimestamp(ev.Timestamp))

	attrs := make([]attribute.KeyValue, 0, 4)
	for k, v := range ev.Attributes() {
		attrs = append(attrs, attribute.String("savings."+k, v))
	}
	span.SetAttributes(attrs...)
	span.End(oteltrace.WithTimestamp(ev.Timestamp))
	return nil
}

// hexToTraceID converts a 32-character hex string to trace.TraceID
func hexToTraceID(hexStr string) (oteltrace.TraceID, error) {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return oteltrace.TraceID{}, fmt.Errorf("trace id %q: %w", hexStr, err)
	}
	if len(b) != 16 {
		return oteltrace.TraceID{}, fmt.Errorf("trace id %q: want 16 bytes, got %d", hexStr, len(b))
	}
	var traceID oteltrace.TraceID
	copy(traceID[:], b)
	return traceID, nil
}

// Shutdown flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
