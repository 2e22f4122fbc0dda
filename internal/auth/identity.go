package auth

import "context"

// Identity is the authenticated caller resolved from a session token.
type Identity struct {
	UserID   int
	Username string
}

type contextKey string

const identityKey contextKey = "fittrack-auth-identity"

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
