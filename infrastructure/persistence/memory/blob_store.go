// Package memory provides an in-memory blob store, the default backend for
// development and tests. Values round-trip through JSON so the behavior
// matches the serializing backends exactly.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// BlobStore keeps serialized values in a map.
type BlobStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewBlobStore creates an empty in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{data: make(map[string][]byte)}
}

// Save serializes the value and stores it under the key.
func (s *BlobStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return nil
}

// Load deserializes the stored value into out. A missing key returns
// (false, nil).
func (s *BlobStore) Load(ctx context.Context, key string, out any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("deserializing %s: %w", key, err)
	}
	return true, nil
}

// Clear removes the key. Clearing an absent key is a no-op.
func (s *BlobStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Exists reports whether the key holds a value.
func (s *BlobStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok, nil
}
