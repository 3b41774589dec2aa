// Package shared carries cross-cutting request state between the service
// shell and domain handlers.
package shared

import (
	"context"

	"github.com/goblinball/goblinball/internal/session"
)

type identityContextKey struct{}

// ContextWithIdentity stores the verified caller identity in context.
func ContextWithIdentity(ctx context.Context, identity *session.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext extracts the verified caller identity from context.
// It returns nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *session.Identity {
	identity, _ := ctx.Value(identityContextKey{}).(*session.Identity)
	return identity
}
