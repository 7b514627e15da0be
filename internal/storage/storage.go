package storage

import (
	"context"
	"errors"
)

// Package storage contains durable key-value blob stores used to persist
// whole-collection snapshots. Each key holds one opaque value; a Put replaces
// the value atomically, so readers see either the old or the new snapshot.

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// BlobStore is a durable key-value store of opaque byte values.
type BlobStore interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}
