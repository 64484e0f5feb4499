package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totallysecure/mathnotes/internal/accounts"
	"github.com/totallysecure/mathnotes/internal/evalx"
	"github.com/totallysecure/mathnotes/internal/keyslot"
	"github.com/totallysecure/mathnotes/internal/logging"
	"github.com/totallysecure/mathnotes/internal/session"
	"github.com/totallysecure/mathnotes/internal/storage"
)

// newTestApp wires an App over an in-memory backend with scripted stdin.
func newTestApp(t *testing.T, input string) *App {
	t.Helper()

	store := storage.NewMemoryStore()
	registry := accounts.NewRegistry(store)
	auth := session.NewAuthenticator(registry, keyslot.New(t.TempDir()))
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &App{
		store:      store,
		registry:   registry,
		controller: session.NewController(auth, store, log),
		evaluator:  evalx.NewArithmetic(),
		log:        log,
		reader:     bufio.NewReader(strings.NewReader(input)),
	}
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		return []byte(pw), nil
	}
}

func TestApp_RegisterThenLogin(t *testing.T) {
	a := newTestApp(t, "ada\nada\n")
	stubPassword(t, "x")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	assert.False(t, a.isLoggedIn())

	require.NoError(t, a.Login(ctx))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(ada)", a.getStatus())
}

func TestApp_RegisterDuplicate(t *testing.T) {
	a := newTestApp(t, "ada\nada\n")
	stubPassword(t, "x")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.Error(t, a.Register(ctx))
}

func TestApp_RegisterRejectsEmptyUsername(t *testing.T) {
	a := newTestApp(t, "\n")
	stubPassword(t, "x")

	require.Error(t, a.Register(context.Background()))
}

func TestApp_LoginWrongPassword(t *testing.T) {
	a := newTestApp(t, "ada\nada\n")
	ctx := context.Background()

	stubPassword(t, "x")
	require.NoError(t, a.Register(ctx))

	stubPassword(t, "wrong")
	require.Error(t, a.Login(ctx))
	assert.False(t, a.isLoggedIn())
}

func TestApp_AddNoteRejectsBadExpression(t *testing.T) {
	// register, login, then addnote with a disallowed character
	a := newTestApp(t, "ada\nada\ntitle\n1+x\n")
	stubPassword(t, "x")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.Login(ctx))

	require.Error(t, a.AddNote(ctx))

	ns, err := a.controller.Notes()
	require.NoError(t, err)
	assert.Empty(t, ns)
}

func TestApp_AddListDelete(t *testing.T) {
	a := newTestApp(t, "ada\nada\nsum\n1+1\nproduct\n2*3\n0\n")
	stubPassword(t, "x")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.Login(ctx))

	require.NoError(t, a.AddNote(ctx)) // sum: 1+1
	require.NoError(t, a.AddNote(ctx)) // product: 2*3
	require.NoError(t, a.List(ctx))

	require.NoError(t, a.Delete(ctx)) // index 0

	ns, err := a.controller.Notes()
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, "product", ns[0].Title)
}

func TestApp_EvalNote(t *testing.T) {
	a := newTestApp(t, "ada\nada\nsum\n(2+3)*4\n0\n")
	stubPassword(t, "x")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.AddNote(ctx))

	require.NoError(t, a.Eval(ctx))
}

func TestApp_EvalOutOfRange(t *testing.T) {
	a := newTestApp(t, "ada\nada\n7\n")
	stubPassword(t, "x")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.Login(ctx))

	require.Error(t, a.Eval(ctx))
}

func TestApp_LogoutFlushes(t *testing.T) {
	a := newTestApp(t, "ada\nada\nsum\n1+1\n")
	stubPassword(t, "x")
	ctx := context.Background()

	require.NoError(t, a.Register(ctx))
	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.AddNote(ctx))
	require.NoError(t, a.Logout(ctx))

	assert.False(t, a.isLoggedIn())

	blob, err := a.store.Get(ctx, "notes-ada-x")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"sum","text":"1+1"}]`, string(blob))
}

func TestApp_NoteOpsRequireLogin(t *testing.T) {
	a := newTestApp(t, "t\n1+1\n")
	ctx := context.Background()

	require.Error(t, a.AddNote(ctx))
	require.Error(t, a.List(ctx))
}
