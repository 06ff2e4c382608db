package ports

import (
	"context"

	"mindflow-backend/domain/analysis"
	"mindflow-backend/domain/events"
)

// BlobStore is the persistence contract to the external key-value service.
// Values are whole collections serialized as JSON-compatible structures; a
// write replaces the previous value for the key.
type BlobStore interface {
	// Save persists a value under a key.
	Save(ctx context.Context, key string, value any) error

	// Load reads the value stored under a key into out. The boolean reports
	// whether the key existed; a missing key is not an error.
	Load(ctx context.Context, key string, out any) (bool, error)

	// Clear removes a key. Clearing an absent key is a no-op.
	Clear(ctx context.Context, key string) error

	// Exists reports whether a key holds a value.
	Exists(ctx context.Context, key string) (bool, error)
}

// Classifier is the pluggable classification backend. The default is the
// local rule engine; deployments can route to an external model instead.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]analysis.Result, error)
}

// EventPublisher defines the interface for publishing domain events.
type EventPublisher interface {
	// Publish sends a single event.
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events.
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// Cache defines the interface for caching derived read models.
type Cache interface {
	// Get retrieves a value from cache.
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value in cache with TTL in seconds.
	Set(ctx context.Context, key string, value interface{}, ttl int) error

	// Delete removes a value from cache.
	Delete(ctx context.Context, key string) error

	// Clear removes all values from cache.
	Clear(ctx context.Context) error
}
