package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/goblinball/goblinball/internal/token"
)

// ErrUnauthorized is the common ancestor of every authentication denial.
// The HTTP boundary reports all of them identically; the subtypes exist for
// logging and tests only.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrNoSession    = fmt.Errorf("%w: no active session", ErrUnauthorized)
	ErrStaleToken   = fmt.Errorf("%w: stale token", ErrUnauthorized)
)

// Identity is the verified caller attached to request context after a
// successful authentication.
type Identity struct {
	SubjectID string
	Username  string
	Role      string
}

// Authenticator answers "is this bearer credential currently valid, and who
// is it for?" by combining signature verification with the live session
// record.
type Authenticator struct {
	codec *token.Codec
	store Store
}

// NewAuthenticator constructs an Authenticator.
func NewAuthenticator(codec *token.Codec, store Store) *Authenticator {
	return &Authenticator{codec: codec, store: store}
}

// Authenticate validates a bearer token end to end: signature and expiry
// first, then session presence, then session id equality. A token stays
// usable until it expires or its subject logs in again or logs out,
// whichever happens first.
func (a *Authenticator) Authenticate(ctx context.Context, bearer string) (*Identity, error) {
	claims, err := a.codec.Verify(bearer)
	if err != nil {
		return nil, ErrInvalidToken
	}

	stored, ok, err := a.store.Get(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if !ok {
		return nil, ErrNoSession
	}
	if stored != claims.SessionID {
		return nil, ErrStaleToken
	}

	return &Identity{
		SubjectID: claims.Subject,
		Username:  claims.Username,
		Role:      claims.Role,
	}, nil
}
