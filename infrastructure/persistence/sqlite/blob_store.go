// Package sqlite implements the blob store on a local SQLite database, the
// backend used by the CLI and single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	pkgerrors "mindflow-backend/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS blobs (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// BlobStore persists serialized collections as rows in a blobs table.
type BlobStore struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path.
func Open(path string) (*BlobStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &BlobStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BlobStore) Close() error {
	return s.db.Close()
}

// Save serializes the value and upserts it under the key.
func (s *BlobStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.NewPersistenceError(fmt.Sprintf("serializing %s", key), err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC())
	if err != nil {
		return pkgerrors.NewPersistenceError(fmt.Sprintf("writing %s", key), err)
	}
	return nil
}

// Load reads the row for the key and deserializes it into out.
func (s *BlobStore) Load(ctx context.Context, key string, out any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM blobs WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, pkgerrors.NewPersistenceError(fmt.Sprintf("reading %s", key), err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, pkgerrors.NewPersistenceError(fmt.Sprintf("deserializing %s", key), err)
	}
	return true, nil
}

// Clear removes the row for the key. Clearing an absent key is a no-op.
func (s *BlobStore) Clear(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return pkgerrors.NewPersistenceError(fmt.Sprintf("clearing %s", key), err)
	}
	return nil
}

// Exists reports whether the key holds a value.
func (s *BlobStore) Exists(ctx context.Context, key string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM blobs WHERE key = ?`, key).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, pkgerrors.NewPersistenceError(fmt.Sprintf("checking %s", key), err)
	}
	return true, nil
}
