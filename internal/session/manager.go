package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goblinball/goblinball/internal/token"
)

// Manager is the sole writer of session state. Login mutations call Begin,
// logout mutations call End; everything else only reads through the
// Authenticator.
type Manager struct {
	codec *token.Codec
	store Store
}

// NewManager constructs a Manager.
func NewManager(codec *token.Codec, store Store) *Manager {
	return &Manager{codec: codec, store: store}
}

// Begin mints a fresh session id for the subject, stores it (replacing any
// previous session, which invalidates tokens issued under it), and returns
// a signed bearer token. The store write is acknowledged before the token
// is issued; a login must not report success otherwise.
func (m *Manager) Begin(ctx context.Context, subjectID, username, role string) (string, error) {
	sessionID := strings.ReplaceAll(uuid.NewString(), "-", "")
	if err := m.store.Put(ctx, subjectID, sessionID); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return m.codec.Issue(subjectID, username, role, sessionID)
}

// End deletes the subject's session record, invalidating every outstanding
// token for it regardless of expiry.
func (m *Manager) End(ctx context.Context, subjectID string) error {
	return m.store.Delete(ctx, subjectID)
}
