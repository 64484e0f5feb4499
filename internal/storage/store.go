// Package storage provides the key-value persistence backend the account
// registry and note store write their blobs to. Keys are opaque strings,
// values are opaque byte blobs; the backend attaches no meaning to either.
//
// Implementations: in-memory (tests), SQLite (default local storage),
// Postgres, and S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
)

// Store is a string-keyed blob store.
//
// Get returns common.ErrorNotFound when the key has never been written;
// callers decide whether that means "empty data" or a failure. Set overwrites
// the full value for a key. Both must be treated as suspension points that
// can fail independently.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Kind selects a Store implementation.
type Kind string

const (
	KindMemory   Kind = "memory"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
	KindS3       Kind = "s3"
)

// S3Options holds the settings for the S3-compatible backend
// (MinIO-style static credentials plus a base endpoint).
type S3Options struct {
	Bucket       string
	Region       string
	RootUser     string
	RootPassword string
	BaseEndpoint string
}

// Options selects and configures a backend.
type Options struct {
	Kind        Kind
	SQLitePath  string
	PostgresDSN string
	S3          S3Options
}

// New opens the backend selected by o.Kind. SQL-backed stores run their
// migrations before returning.
func New(ctx context.Context, o Options) (Store, error) {
	switch o.Kind {
	case KindMemory:
		return NewMemoryStore(), nil
	case KindSQLite, "":
		return NewSQLiteStore(ctx, o.SQLitePath)
	case KindPostgres:
		return NewPostgresStore(ctx, o.PostgresDSN)
	case KindS3:
		return NewS3Store(ctx, o.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", o.Kind)
	}
}
