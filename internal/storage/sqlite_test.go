package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/totallysecure/mathnotes/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE blobs (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	s := NewSQLiteStoreFromDB(setupDB(t))
	_, err := s.Get(context.Background(), "nope")
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestSQLiteStore_SetInsertAndUpdate(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStoreFromDB(db)
	ctx := context.Background()

	// insert
	require.NoError(t, s.Set(ctx, "accounts", []byte(`[{"username":"ada","password":"x"}]`)))

	var v []byte
	err := db.QueryRow(`SELECT value FROM blobs WHERE key=?`, "accounts").Scan(&v)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"username":"ada","password":"x"}]`, string(v))

	// upsert on the same key
	require.NoError(t, s.Set(ctx, "accounts", []byte(`[]`)))
	err = db.QueryRow(`SELECT value FROM blobs WHERE key=?`, "accounts").Scan(&v)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)

	var n int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM blobs`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := NewSQLiteStoreFromDB(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "notes-ada-x", []byte(`[{"title":"t","text":"1+1"}]`)))
	got, err := s.Get(ctx, "notes-ada-x")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"title":"t","text":"1+1"}]`), got)
}

func TestSQLiteStore_KeysAreIndependent(t *testing.T) {
	s := NewSQLiteStoreFromDB(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "notes-ada-x", []byte("a")))
	require.NoError(t, s.Set(ctx, "notes-bob-y", []byte("b")))

	got, err := s.Get(ctx, "notes-ada-x")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)
}
