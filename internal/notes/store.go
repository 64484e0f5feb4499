package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/totallysecure/mathnotes/internal/accounts"
	"github.com/totallysecure/mathnotes/internal/common"
	"github.com/totallysecure/mathnotes/internal/storage"
)

// PartitionKey derives the storage key for an account's collection:
// "notes-" + username + "-" + password. The raw credential pair in the key
// is the persisted external format; it must never be hashed or transformed.
func PartitionKey(a accounts.Account) string {
	return "notes-" + a.Username + "-" + a.Password
}

// Store holds one account's collection in memory and mirrors it to the
// backend on every mutation. A Store is owned by a single session and
// discarded when the session ends; render order, storage order and
// deletion-index order are all the same insertion order.
//
// Every mutation is a full-collection rewrite (read snapshot, mutate, write
// snapshot). Overlapping writes to the same key keep last-writer-wins
// semantics.
type Store struct {
	backend storage.Store
	notes   []Note
}

func NewStore(backend storage.Store) *Store {
	return &Store{backend: backend}
}

// Load reads the persisted collection for a into memory and returns it.
// A key that has never been written yields an empty collection; that is the
// first-ever login for this account, not an error.
func (s *Store) Load(ctx context.Context, a accounts.Account) ([]Note, error) {
	blob, err := s.backend.Get(ctx, PartitionKey(a))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.notes = []Note{}
			return s.Notes(), nil
		}
		return nil, fmt.Errorf("notes load error: %w", err)
	}

	var ns []Note
	if err := json.Unmarshal(blob, &ns); err != nil {
		return nil, fmt.Errorf("notes parse error: %w", err)
	}
	s.notes = ns
	return s.Notes(), nil
}

// Notes returns a copy of the current in-memory collection.
func (s *Store) Notes() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *Store) flush(ctx context.Context, a accounts.Account, ns []Note) error {
	blob, err := json.Marshal(ns)
	if err != nil {
		return fmt.Errorf("notes encode error: %w", err)
	}
	if err := s.backend.Set(ctx, PartitionKey(a), blob); err != nil {
		return fmt.Errorf("notes save error: %w", err)
	}
	return nil
}

// AppendAndFlush validates the note, appends it and immediately writes the
// whole updated collection back. An empty title or empty text fails with a
// single combined common.ErrValidation. If the write fails, the in-memory
// collection is left as it was.
func (s *Store) AppendAndFlush(ctx context.Context, a accounts.Account, n Note) error {
	if n.Title == "" || n.Text == "" {
		return common.ErrValidation
	}

	updated := append(s.Notes(), n)
	if err := s.flush(ctx, a, updated); err != nil {
		return err
	}
	s.notes = updated
	return nil
}

// DeleteAt removes the note at index and immediately flushes the result.
// An index outside [0, len) fails with common.ErrIndexOutOfRange and leaves
// the collection unchanged, as does a failed write.
func (s *Store) DeleteAt(ctx context.Context, a accounts.Account, index int) error {
	if index < 0 || index >= len(s.notes) {
		return fmt.Errorf("%w: %d", common.ErrIndexOutOfRange, index)
	}

	updated := s.Notes()
	updated = append(updated[:index], updated[index+1:]...)
	if err := s.flush(ctx, a, updated); err != nil {
		return err
	}
	s.notes = updated
	return nil
}

// FlushOnExit writes the current collection exactly once at session
// teardown, but only when it is non-empty. Deleting the last note and
// exiting therefore does not persist the empty state.
func (s *Store) FlushOnExit(ctx context.Context, a accounts.Account) error {
	if len(s.notes) == 0 {
		return nil
	}
	return s.flush(ctx, a, s.notes)
}
