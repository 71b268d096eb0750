// Package middleware provides the HTTP middleware the skill server mounts on
// every route: request logging, timeout enforcement and panic recovery. It
// integrates with zerolog for structured logging and carries the tracing
// headers the dialog manager sends into the request log context.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/telekom/voice-skill-sdk/internal/common/logtrace"
	"github.com/telekom/voice-skill-sdk/internal/common/uuid"
)

// RequestIDHeader carries the generated request ID back to the caller.
const RequestIDHeader = "X-Request-Id"

// RequestLogger creates middleware that logs incoming requests and adds a
// unique request ID to both the request context and response headers. The
// tracing headers from the dialog manager are added as log fields so every
// line of a request can be correlated with the upstream trace. A request
// marked with the user debug log header is logged at debug level regardless
// of the global level.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()

		requestID := newRequestID()
		headers := logtrace.ParseHeaders(r.Header)

		ctx = logtrace.WithRequestID(ctx, requestID)
		ctx = logtrace.WithHeaders(ctx, headers)

		logCtx := log.With().Str("request_id", requestID)
		if headers.TraceID != "" {
			logCtx = logCtx.Str("trace_id", headers.TraceID)
		}
		if headers.SpanID != "" {
			logCtx = logCtx.Str("span_id", headers.SpanID)
		}
		if headers.TenantID != "" {
			logCtx = logCtx.Str("tenant", headers.TenantID)
		}
		if headers.Testing {
			logCtx = logCtx.Bool("testing", true)
		}
		logger := logCtx.Logger()
		if headers.DebugLog {
			logger = logger.Level(zerolog.DebugLevel)
		}
		ctx = logger.WithContext(ctx)

		w.Header().Set(RequestIDHeader, requestID)

		requestFields := map[string]any{
			"requestMethod": r.Method,
			"requestPath":   r.URL.Path,
			"remoteIP":      r.RemoteAddr,
			"proto":         r.Proto,
		}
		log.Ctx(ctx).Info().Fields(requestFields).Msg("incoming request")

		defer func() {
			log.Ctx(ctx).Info().
				Str("duration", fmt.Sprintf("%dms", time.Since(start).Milliseconds())).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// newRequestID generates a unique request identifier. It attempts to create
// a UUID first, falling back to a timestamp-based ID if generation fails.
func newRequestID() string {
	u, err := uuid.NewRandom()
	if err == nil {
		return u.String()
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
