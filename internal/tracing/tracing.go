// Package tracing provides the OpenTelemetry glue for intent calls. The SDK
// starts a span per handler invocation and annotates it with the upstream
// B3 identifiers; exporter wiring is left to the hosting skill.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/telekom/voice-skill-sdk/internal/common/logtrace"
)

const tracerName = "github.com/telekom/voice-skill-sdk"

// StartSpan starts a span with the given name and attaches the upstream
// trace context from the request headers as attributes.
func StartSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name)

	headers := logtrace.HeadersFromContext(ctx)
	if headers.TraceID != "" {
		span.SetAttributes(attribute.String("upstream.trace_id", headers.TraceID))
	}
	if headers.SpanID != "" {
		span.SetAttributes(attribute.String("upstream.span_id", headers.SpanID))
	}
	if headers.TenantID != "" {
		span.SetAttributes(attribute.String("tenant", headers.TenantID))
	}
	if headers.Testing {
		span.SetAttributes(attribute.Bool("testing", true))
	}
	return ctx, span
}
