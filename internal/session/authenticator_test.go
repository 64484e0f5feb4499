package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totallysecure/mathnotes/internal/accounts"
	"github.com/totallysecure/mathnotes/internal/common"
	"github.com/totallysecure/mathnotes/internal/keyslot"
	"github.com/totallysecure/mathnotes/internal/storage"
)

func newAuthenticator(t *testing.T) (*Authenticator, *accounts.Registry) {
	t.Helper()
	registry := accounts.NewRegistry(storage.NewMemoryStore())
	slot := keyslot.New(t.TempDir())
	return NewAuthenticator(registry, slot), registry
}

func TestLogin_Success(t *testing.T) {
	a, registry := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, registry.Register(ctx, "ada", "x"))

	s, err := a.Login(ctx, "ada", "x")
	require.NoError(t, err)
	assert.Equal(t, "ada", s.Account.Username)
	assert.NotEqual(t, s.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Same(t, s, a.Session())
	assert.True(t, a.HasStoredCredential(ctx))
}

func TestLogin_EmptyRegistry(t *testing.T) {
	a, _ := newAuthenticator(t)
	ctx := context.Background()

	_, err := a.Login(ctx, "ada", "x")
	require.True(t, errors.Is(err, common.ErrInvalidCredentials))
	assert.Nil(t, a.Session())
}

func TestLogin_MismatchLeavesMarkerUntouched(t *testing.T) {
	a, registry := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, registry.Register(ctx, "ada", "x"))

	_, err := a.Login(ctx, "ada", "wrong")
	require.True(t, errors.Is(err, common.ErrInvalidCredentials))
	assert.False(t, a.HasStoredCredential(ctx))

	_, err = a.Login(ctx, "grace", "x")
	require.True(t, errors.Is(err, common.ErrInvalidCredentials))
	assert.False(t, a.HasStoredCredential(ctx))
}

func TestLogin_MarkerHoldsLastSuccessfulPair(t *testing.T) {
	a, registry := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, registry.Register(ctx, "ada", "x"))
	require.NoError(t, registry.Register(ctx, "grace", "y"))

	_, err := a.Login(ctx, "ada", "x")
	require.NoError(t, err)
	_, err = a.Login(ctx, "grace", "y")
	require.NoError(t, err)

	u, p, err := a.StoredCredential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "grace", u)
	assert.Equal(t, "y", p)
}

func TestLogout_KeepsMarker(t *testing.T) {
	a, registry := newAuthenticator(t)
	ctx := context.Background()

	require.NoError(t, registry.Register(ctx, "ada", "x"))
	_, err := a.Login(ctx, "ada", "x")
	require.NoError(t, err)

	a.Logout()

	assert.Nil(t, a.Session())
	// the marker survives logout; only the in-memory session is gone
	assert.True(t, a.HasStoredCredential(ctx))
}

func TestHasStoredCredential_NoAccountCorrespondenceCheck(t *testing.T) {
	registry := accounts.NewRegistry(storage.NewMemoryStore())
	slot := keyslot.New(t.TempDir())
	ctx := context.Background()

	// a marker written by some earlier install; no such account exists now
	require.NoError(t, slot.Save(ctx, "ghost", "gone"))

	a := NewAuthenticator(registry, slot)
	assert.True(t, a.HasStoredCredential(ctx))
}
