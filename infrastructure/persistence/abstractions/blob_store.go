// Package abstractions provides backend-agnostic decorators for the blob
// store port so cross-cutting persistence behavior stays out of the
// individual backends.
package abstractions

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"mindflow-backend/application/ports"
	"mindflow-backend/pkg/observability"
)

// InstrumentedBlobStore records metrics and logs for every operation on the
// wrapped store.
type InstrumentedBlobStore struct {
	inner   ports.BlobStore
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewInstrumentedBlobStore wraps a blob store with observability.
func NewInstrumentedBlobStore(inner ports.BlobStore, metrics *observability.Collector, logger *zap.Logger) *InstrumentedBlobStore {
	return &InstrumentedBlobStore{inner: inner, metrics: metrics, logger: logger}
}

func (s *InstrumentedBlobStore) Save(ctx context.Context, key string, value any) error {
	start := time.Now()
	err := s.inner.Save(ctx, key, value)
	s.metrics.RecordBlobOperation("save", key, err)
	s.logger.Debug("blob save",
		zap.String("key", key),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))
	return err
}

func (s *InstrumentedBlobStore) Load(ctx context.Context, key string, out any) (bool, error) {
	found, err := s.inner.Load(ctx, key, out)
	s.metrics.RecordBlobOperation("load", key, err)
	return found, err
}

func (s *InstrumentedBlobStore) Clear(ctx context.Context, key string) error {
	err := s.inner.Clear(ctx, key)
	s.metrics.RecordBlobOperation("clear", key, err)
	return err
}

func (s *InstrumentedBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	found, err := s.inner.Exists(ctx, key)
	s.metrics.RecordBlobOperation("exists", key, err)
	return found, err
}

// Close forwards to the wrapped store when it owns a real resource.
func (s *InstrumentedBlobStore) Close() error {
	if closer, ok := s.inner.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// RetryingBlobStore retries writes a bounded number of times with a fixed
// backoff. Reads are not retried; the store treats a missing value as an
// empty collection anyway.
type RetryingBlobStore struct {
	inner   ports.BlobStore
	retries int
	backoff time.Duration
}

// NewRetryingBlobStore wraps a blob store with write retries.
func NewRetryingBlobStore(inner ports.BlobStore, retries int, backoff time.Duration) *RetryingBlobStore {
	if retries < 0 {
		retries = 0
	}
	return &RetryingBlobStore{inner: inner, retries: retries, backoff: backoff}
}

func (s *RetryingBlobStore) Save(ctx context.Context, key string, value any) error {
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.backoff):
			}
		}
		if err = s.inner.Save(ctx, key, value); err == nil {
			return nil
		}
	}
	return err
}

func (s *RetryingBlobStore) Load(ctx context.Context, key string, out any) (bool, error) {
	return s.inner.Load(ctx, key, out)
}

func (s *RetryingBlobStore) Clear(ctx context.Context, key string) error {
	return s.inner.Clear(ctx, key)
}

func (s *RetryingBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	return s.inner.Exists(ctx, key)
}

// Close forwards to the wrapped store when it owns a real resource.
func (s *RetryingBlobStore) Close() error {
	if closer, ok := s.inner.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
