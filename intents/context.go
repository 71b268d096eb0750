package intents

import (
	"context"
)

type contextKey struct{}

// WithRequest returns a context carrying the invoke request.
func WithRequest(ctx context.Context, r *Request) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext extracts the invoke request from a context. Returns nil when
// the context does not belong to an invoke.
func FromContext(ctx context.Context) *Request {
	r, _ := ctx.Value(contextKey{}).(*Request)
	return r
}
