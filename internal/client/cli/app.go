// Package cli is the terminal front-end of the math-notes client. It owns
// no business rules: every command resolves to a call on the session
// controller, the account registry, the sanitizer or the evaluator, and
// renders the result.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/totallysecure/mathnotes/internal/accounts"
	"github.com/totallysecure/mathnotes/internal/client/config"
	"github.com/totallysecure/mathnotes/internal/evalx"
	"github.com/totallysecure/mathnotes/internal/keyslot"
	"github.com/totallysecure/mathnotes/internal/logging"
	"github.com/totallysecure/mathnotes/internal/session"
	"github.com/totallysecure/mathnotes/internal/storage"
)

type App struct {
	config     *config.Config
	store      storage.Store
	registry   *accounts.Registry
	controller *session.Controller
	evaluator  evalx.Evaluator
	log        logging.Logger
	reader     *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	store, err := storage.New(ctx, storage.Options{
		Kind:        storage.Kind(c.Backend),
		SQLitePath:  c.SQLitePath,
		PostgresDSN: c.PostgresDSN,
		S3: storage.S3Options{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
		},
	})
	if err != nil {
		log.Error(ctx, "error opening storage backend", "backend", c.Backend, "error", err)
		return nil, err
	}

	registry := accounts.NewRegistry(store)
	auth := session.NewAuthenticator(registry, keyslot.New(c.KeyslotDir))
	controller := session.NewController(auth, store, log)

	return &App{
		config:     c,
		store:      store,
		registry:   registry,
		controller: controller,
		evaluator:  evalx.NewArithmetic(),
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.controller.Session() != nil
}
