package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/totallysecure/mathnotes/internal/common"
	"github.com/totallysecure/mathnotes/internal/storage"
)

// StorageKey is the single fixed key the whole account set is persisted
// under, serialized as a JSON array of account records.
const StorageKey = "accounts"

// Registry reads and appends accounts. Every write is a read-entire-blob,
// mutate, write-entire-blob cycle; two overlapping Register calls can lose
// an update (last-writer-wins).
type Registry struct {
	store storage.Store
}

func NewRegistry(store storage.Store) *Registry {
	return &Registry{store: store}
}

// List loads the full persisted set. A never-written key yields an empty
// slice; a corrupt blob is an error.
func (r *Registry) List(ctx context.Context) ([]Account, error) {
	blob, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return []Account{}, nil
		}
		return nil, fmt.Errorf("accounts load error: %w", err)
	}

	var accs []Account
	if err := json.Unmarshal(blob, &accs); err != nil {
		return nil, fmt.Errorf("accounts parse error: %w", err)
	}
	return accs, nil
}

// Register appends a new account unless the username is already taken
// (case-sensitive exact match) and rewrites the whole set.
func (r *Registry) Register(ctx context.Context, username, password string) error {
	accs, err := r.List(ctx)
	if err != nil {
		return err
	}

	for _, a := range accs {
		if a.Username == username {
			return common.ErrDuplicateUsername
		}
	}

	accs = append(accs, Account{Username: username, Password: password})

	blob, err := json.Marshal(accs)
	if err != nil {
		return fmt.Errorf("accounts encode error: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, blob); err != nil {
		return fmt.Errorf("accounts save error: %w", err)
	}
	return nil
}

// Find returns the account matching both fields exactly, or
// common.ErrInvalidCredentials.
func (r *Registry) Find(ctx context.Context, username, password string) (*Account, error) {
	accs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accs {
		if a.Username == username && a.Password == password {
			found := a
			return &found, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}
