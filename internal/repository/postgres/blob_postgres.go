package postgres

import (
	"context"
	"database/sql"
	"errors"

	"docflow/internal/storage"
)

// BlobPostgres is a PostgreSQL implementation of storage.BlobStore.
// Each key is one row of docflow_blobs; the upsert runs as a single statement
// so each Put is atomic.
type BlobPostgres struct {
	db *sql.DB
}

// NewBlobPostgres creates a new BlobPostgres store.
func NewBlobPostgres(db *sql.DB) *BlobPostgres {
	return &BlobPostgres{db: db}
}

var _ storage.BlobStore = (*BlobPostgres)(nil)

// Get fetches the value stored under key.
func (r *BlobPostgres) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `
		SELECT value
		FROM docflow_blobs
		WHERE key = $1
	`
	var value []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put inserts or replaces the value stored under key.
func (r *BlobPostgres) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO docflow_blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}

// Ping checks database connectivity.
func (r *BlobPostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
