package httpx

import "context"

type ctxKey string

// CtxKeyIdentity holds the authenticated identity (email) for the duration
// of a single request. Nothing is cached beyond the request.
const CtxKeyIdentity ctxKey = "identity"

// WithIdentity attaches the authenticated identity to ctx.
func WithIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, CtxKeyIdentity, email)
}

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(CtxKeyIdentity).(string)
	return email, ok && email != ""
}
