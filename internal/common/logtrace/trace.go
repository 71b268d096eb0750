package logtrace

import (
	"context"
	"net/http"
)

// Header names the dialog manager uses to propagate tracing state.
const (
	HeaderTraceID  = "X-B3-TraceId"
	HeaderSpanID   = "X-B3-SpanId"
	HeaderTenantID = "X-Tenantid"
	HeaderTesting  = "X-Testing"
	HeaderDebugLog = "X-User-Debug-Log"
)

type contextKey string

const (
	requestIDKey contextKey = "requestId"
	headersKey   contextKey = "traceHeaders"
)

// Headers holds the tracing headers extracted from an invoke request. They
// are attached to the request log context and forwarded on outbound calls to
// partner services.
type Headers struct {
	TraceID  string
	SpanID   string
	TenantID string
	Testing  bool
	DebugLog bool
}

// ParseHeaders extracts the tracing headers from an HTTP header set.
func ParseHeaders(h http.Header) Headers {
	return Headers{
		TraceID:  h.Get(HeaderTraceID),
		SpanID:   h.Get(HeaderSpanID),
		TenantID: h.Get(HeaderTenantID),
		Testing:  h.Get(HeaderTesting) != "",
		DebugLog: h.Get(HeaderDebugLog) != "",
	}
}

// Apply sets the tracing headers on an outbound HTTP header set. Empty
// values are not forwarded.
func (t Headers) Apply(h http.Header) {
	if t.TraceID != "" {
		h.Set(HeaderTraceID, t.TraceID)
	}
	if t.SpanID != "" {
		h.Set(HeaderSpanID, t.SpanID)
	}
	if t.TenantID != "" {
		h.Set(HeaderTenantID, t.TenantID)
	}
	if t.Testing {
		h.Set(HeaderTesting, "true")
	}
}

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if the context is nil or carries no request ID.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	r, ok := ctx.Value(requestIDKey).(string)
	if !ok {
		return ""
	}
	return r
}

// WithHeaders returns a context carrying the tracing headers.
func WithHeaders(ctx context.Context, t Headers) context.Context {
	return context.WithValue(ctx, headersKey, t)
}

// HeadersFromContext extracts the tracing headers from the context.
// Returns zero headers if none were set.
func HeadersFromContext(ctx context.Context) Headers {
	if ctx == nil {
		return Headers{}
	}
	t, ok := ctx.Value(headersKey).(Headers)
	if !ok {
		return Headers{}
	}
	return t
}
