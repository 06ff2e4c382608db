package abstractions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindflow-backend/pkg/observability"
)

// countingBlobStore counts calls and can fail the first n saves.
type countingBlobStore struct {
	saves     int
	failSaves int
}

func (c *countingBlobStore) Save(ctx context.Context, key string, value any) error {
	c.saves++
	if c.saves <= c.failSaves {
		return errors.New("blob store unavailable")
	}
	return nil
}

func (c *countingBlobStore) Load(ctx context.Context, key string, out any) (bool, error) {
	return false, nil
}

func (c *countingBlobStore) Clear(ctx context.Context, key string) error { return nil }

func (c *countingBlobStore) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

func TestInstrumentedBlobStoreCountsEachSaveOnce(t *testing.T) {
	inner := &countingBlobStore{}
	metrics := observability.NewCollector("mindflow")
	store := NewInstrumentedBlobStore(inner, metrics, zap.NewNop())

	counter := metrics.BlobOperations.WithLabelValues("save", "instrumented-save-once", "ok")
	before := testutil.ToFloat64(counter)

	require.NoError(t, store.Save(context.Background(), "instrumented-save-once", map[string]string{"k": "v"}))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Equal(t, 1, inner.saves)
}

func TestRetryingBlobStoreRetriesFailedWrites(t *testing.T) {
	inner := &countingBlobStore{failSaves: 1}
	store := NewRetryingBlobStore(inner, 2, time.Millisecond)

	require.NoError(t, store.Save(context.Background(), "documents", nil))
	assert.Equal(t, 2, inner.saves)
}

func TestRetryingBlobStoreGivesUpAfterBudget(t *testing.T) {
	inner := &countingBlobStore{failSaves: 10}
	store := NewRetryingBlobStore(inner, 2, time.Millisecond)

	err := store.Save(context.Background(), "documents", nil)
	require.Error(t, err)
	assert.Equal(t, 3, inner.saves)
}
