package session

import (
	"context"
	"errors"

	"github.com/totallysecure/mathnotes/internal/logging"
	"github.com/totallysecure/mathnotes/internal/notes"
	"github.com/totallysecure/mathnotes/internal/storage"
)

// ErrNoSession is returned by note operations invoked while nobody is
// logged in.
var ErrNoSession = errors.New("no active session")

// Controller owns the session lifecycle: Begin logs in and loads the
// account's notes, the note operations thread the session's account into the
// store, and End flushes once and logs out. The UI layer only ever talks to
// the Controller and never holds an Account of its own.
type Controller struct {
	auth    *Authenticator
	backend storage.Store
	log     logging.Logger

	store *notes.Store
}

func NewController(auth *Authenticator, backend storage.Store, log logging.Logger) *Controller {
	return &Controller{auth: auth, backend: backend, log: log}
}

// Begin authenticates and, on success, loads the account's persisted notes
// into a fresh per-session store.
func (c *Controller) Begin(ctx context.Context, username, password string) ([]notes.Note, error) {
	s, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	store := notes.NewStore(c.backend)
	loaded, err := store.Load(ctx, s.Account)
	if err != nil {
		// the login already happened; the marker stays, the session does not
		c.auth.Logout()
		return nil, err
	}

	c.store = store
	c.log.Info(ctx, "session started", "username", username, "notes", len(loaded))
	return loaded, nil
}

// Session exposes the current session, or nil.
func (c *Controller) Session() *Session {
	return c.auth.Session()
}

// HasStoredCredential proxies the marker check for the UI's routing
// decision.
func (c *Controller) HasStoredCredential(ctx context.Context) bool {
	return c.auth.HasStoredCredential(ctx)
}

// StoredCredential proxies the marker's pair for display.
func (c *Controller) StoredCredential(ctx context.Context) (string, string, error) {
	return c.auth.StoredCredential(ctx)
}

// Notes returns the current session's collection snapshot.
func (c *Controller) Notes() ([]notes.Note, error) {
	if c.Session() == nil {
		return nil, ErrNoSession
	}
	return c.store.Notes(), nil
}

// AddNote appends a note to the current session's collection and flushes.
func (c *Controller) AddNote(ctx context.Context, title, text string) error {
	s := c.Session()
	if s == nil {
		return ErrNoSession
	}
	return c.store.AppendAndFlush(ctx, s.Account, notes.Note{Title: title, Text: text})
}

// DeleteNote removes the note at index and flushes.
func (c *Controller) DeleteNote(ctx context.Context, index int) error {
	s := c.Session()
	if s == nil {
		return ErrNoSession
	}
	return c.store.DeleteAt(ctx, s.Account, index)
}

// End tears the session down: one final flush attempt (skipped for an empty
// collection), then logout. The flush error, if any, is reported but does
// not keep the session alive.
func (c *Controller) End(ctx context.Context) error {
	s := c.Session()
	if s == nil {
		return nil
	}

	err := c.store.FlushOnExit(ctx, s.Account)
	if err != nil {
		c.log.Error(ctx, "flush on exit failed", "username", s.Account.Username, "error", err)
	}

	c.auth.Logout()
	c.store = nil
	c.log.Info(ctx, "session ended", "username", s.Account.Username)
	return err
}
