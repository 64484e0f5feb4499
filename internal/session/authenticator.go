package session

import (
	"context"
	"fmt"

	"github.com/totallysecure/mathnotes/internal/accounts"
	"github.com/totallysecure/mathnotes/internal/keyslot"
)

// Authenticator validates login attempts against the registry and maintains
// the credential marker. It holds at most one authenticated session at a
// time.
type Authenticator struct {
	registry *accounts.Registry
	slot     *keyslot.Slot
	current  *Session
}

func NewAuthenticator(registry *accounts.Registry, slot *keyslot.Slot) *Authenticator {
	return &Authenticator{registry: registry, slot: slot}
}

// Login matches both fields exactly against the registry. On success it
// writes the credential marker and establishes the in-memory session. On a
// mismatch it returns common.ErrInvalidCredentials and leaves the marker
// untouched.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Session, error) {
	acc, err := a.registry.Find(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := a.slot.Save(ctx, username, password); err != nil {
		return nil, fmt.Errorf("credential marker save error: %w", err)
	}

	a.current = newSession(*acc)
	return a.current, nil
}

// Session returns the current in-memory session, or nil when nobody is
// logged in.
func (a *Authenticator) Session() *Session {
	return a.current
}

// HasStoredCredential reports whether the credential marker holds any value,
// independent of the in-memory session. It does not verify that the marker
// still corresponds to a registered account; a stale marker passes this
// check.
func (a *Authenticator) HasStoredCredential(ctx context.Context) bool {
	return a.slot.Has(ctx)
}

// StoredCredential returns the marker's pair, for display purposes only.
func (a *Authenticator) StoredCredential(ctx context.Context) (username, password string, err error) {
	return a.slot.Stored(ctx)
}

// Logout drops the in-memory session. The credential marker is deliberately
// left in place, so HasStoredCredential stays true after logout.
func (a *Authenticator) Logout() {
	a.current = nil
}
