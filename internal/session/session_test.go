package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/goblinball/goblinball/internal/session"
	"github.com/goblinball/goblinball/internal/token"
)

func newFixture(t *testing.T) (*session.Manager, *session.Authenticator, *session.RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewRedisStore(client, 0)
	codec := token.NewCodec("topsecret", time.Hour)
	return session.NewManager(codec, store), session.NewAuthenticator(codec, store), store
}

func TestStorePutGetDelete(t *testing.T) {
	_, _, store := newFixture(t)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	require.False(t, ok, "missing key must read as absent, not as an error")

	require.NoError(t, store.Put(ctx, "u1", "s1"))

	got, ok, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "s1", got)

	require.NoError(t, store.Delete(ctx, "u1"))
	require.NoError(t, store.Delete(ctx, "u1"), "double delete is a no-op")

	_, ok, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAuthenticateHappyPath(t *testing.T) {
	manager, auth, _ := newFixture(t)
	ctx := context.Background()

	bearer, err := manager.Begin(ctx, "u1", "grimgor", "user")
	require.NoError(t, err)

	identity, err := auth.Authenticate(ctx, bearer)
	require.NoError(t, err)
	require.Equal(t, &session.Identity{SubjectID: "u1", Username: "grimgor", Role: "user"}, identity)

	// Repeated authentication with the same token yields the same identity.
	again, err := auth.Authenticate(ctx, bearer)
	require.NoError(t, err)
	require.Equal(t, identity, again)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	_, auth, _ := newFixture(t)

	_, err := auth.Authenticate(context.Background(), "not-a-token")
	require.ErrorIs(t, err, session.ErrInvalidToken)
	require.ErrorIs(t, err, session.ErrUnauthorized)
}

func TestAuthenticateAfterLogout(t *testing.T) {
	manager, auth, _ := newFixture(t)
	ctx := context.Background()

	bearer, err := manager.Begin(ctx, "u1", "grimgor", "user")
	require.NoError(t, err)
	require.NoError(t, manager.End(ctx, "u1"))

	_, err = auth.Authenticate(ctx, bearer)
	require.ErrorIs(t, err, session.ErrNoSession)
	require.ErrorIs(t, err, session.ErrUnauthorized)
}

func TestAuthenticateStaleAfterRelogin(t *testing.T) {
	manager, auth, _ := newFixture(t)
	ctx := context.Background()

	first, err := manager.Begin(ctx, "u1", "grimgor", "user")
	require.NoError(t, err)

	second, err := manager.Begin(ctx, "u1", "grimgor", "user")
	require.NoError(t, err)

	_, err = auth.Authenticate(ctx, first)
	require.ErrorIs(t, err, session.ErrStaleToken)

	identity, err := auth.Authenticate(ctx, second)
	require.NoError(t, err)
	require.Equal(t, "u1", identity.SubjectID)
}

func TestAuthenticateSubjectsAreIndependent(t *testing.T) {
	manager, auth, _ := newFixture(t)
	ctx := context.Background()

	one, err := manager.Begin(ctx, "u1", "grimgor", "user")
	require.NoError(t, err)
	two, err := manager.Begin(ctx, "u2", "morglum", "admin")
	require.NoError(t, err)

	require.NoError(t, manager.End(ctx, "u1"))

	_, err = auth.Authenticate(ctx, one)
	require.ErrorIs(t, err, session.ErrNoSession)

	identity, err := auth.Authenticate(ctx, two)
	require.NoError(t, err)
	require.Equal(t, "admin", identity.Role)
}
