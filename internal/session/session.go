// Package session authenticates logins against the account registry and
// drives the session lifecycle: login, note-store load, flush-on-exit,
// logout.
package session

import (
	"github.com/google/uuid"
	"github.com/totallysecure/mathnotes/internal/accounts"
)

// Session is the in-memory record of the currently authenticated account.
// It is an explicit value owned by the Controller and passed to downstream
// calls, never ambient state. It lives for the process run at most and is
// not persisted; the credential marker in the keyslot is a separate,
// persisted record of the *last* successful login.
type Session struct {
	ID      uuid.UUID
	Account accounts.Account
}

func newSession(a accounts.Account) *Session {
	return &Session{ID: uuid.New(), Account: a}
}
