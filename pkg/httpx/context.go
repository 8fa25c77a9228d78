package httpx

import "context"

type ctxKey string

const CtxKeyIdentity ctxKey = "identity"

// WithIdentity stores the authenticated identity in ctx.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, identity)
}

// IdentityFromContext returns the identity set by AuthnMiddleware.
func IdentityFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyIdentity).(string)
	return v, ok && v != ""
}
