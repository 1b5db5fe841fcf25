package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CacheRepository stores raw cache values by key
type CacheRepository struct {
	db   *sqlx.DB
	exec execFunc
}

// NewCacheRepository creates a new cache repository
func NewCacheRepository(db *sqlx.DB) *CacheRepository {
	return &CacheRepository{db: db, exec: db.ExecContext}
}

// Close closes the database connection
func (r *CacheRepository) Close() error {
	return r.db.Close()
}

// Get retrieves a value by key, found is false if the key is missing
func (r *CacheRepository) Get(ctx context.Context, key string) (value string, found bool, err error) {
	err = r.db.GetContext(ctx, &value, "SELECT value FROM cache_entries WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get cache entry: %w", err)
	}
	return value, true, nil
}

// Set stores a value, overwriting any existing one
func (r *CacheRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO cache_entries (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	return retryWrite(ctx, r.exec, "set cache entry", query, key, value)
}

// Delete removes a value, missing keys are not an error
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	return retryWrite(ctx, r.exec, "delete cache entry", "DELETE FROM cache_entries WHERE key = ?", key)
}

// Keys lists stored keys, ordered
func (r *CacheRepository) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := r.db.SelectContext(ctx, &keys, "SELECT key FROM cache_entries ORDER BY key"); err != nil {
		return nil, fmt.Errorf("list cache keys: %w", err)
	}
	return keys, nil
}
