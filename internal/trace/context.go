package trace

import "context"

// requestIDKey is an unexported type so values stored under it cannot
// collide with keys set by other packages.
type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the given request ID.
// An empty string is a valid request ID, distinct from "not set".
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID stored in ctx, if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
