package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"docflow/internal/storage"
)

// Fixed storage keys for the two collections.
const (
	DocumentsKey = "docflow_documents"
	LocationsKey = "docflow_locations"
)

// ErrCorrupt marks a stored snapshot that could not be decoded.
var ErrCorrupt = errors.New("corrupt snapshot")

// Snapshot persists a whole collection as one JSON array under a fixed key.
// There are no incremental writes: every Save re-serializes the collection.
type Snapshot[T any] struct {
	store storage.BlobStore
	key   string
}

// NewSnapshot binds a collection to key in store.
func NewSnapshot[T any](store storage.BlobStore, key string) *Snapshot[T] {
	return &Snapshot[T]{store: store, key: key}
}

// Key returns the storage key.
func (s *Snapshot[T]) Key() string { return s.key }

// Load returns the stored collection in stored order.
//
// An absent key yields an empty collection and no error. A value that does
// not decode yields an empty collection and an error wrapping ErrCorrupt.
// Backend failures are returned as is, wrapped with the key.
func (s *Snapshot[T]) Load(ctx context.Context) ([]T, error) {
	b, err := s.store.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}

	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return []T{}, fmt.Errorf("load %s: %w: %v", s.key, ErrCorrupt, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save replaces the stored collection with items.
func (s *Snapshot[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.store.Put(ctx, s.key, b); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}
