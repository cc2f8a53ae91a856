package requestid

import "context"

type ctxKey struct{}

// WithID returns copy of ctx carrying request id
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns request id stored in ctx or empty string
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
