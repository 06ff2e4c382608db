package sagas

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindflow-backend/application/services"
	"mindflow-backend/domain/config"
	"mindflow-backend/infrastructure/messaging"
	"mindflow-backend/infrastructure/persistence/memory"
	"mindflow-backend/pkg/observability"
)

func newTestSaga(t *testing.T) (*SaveNoteSaga, *services.StoreService) {
	t.Helper()

	cfg := config.DefaultDomainConfig()
	logger := zap.NewNop()
	metrics := observability.NewCollector("mindflow")

	analyzer := services.NewAnalyzerService(services.NewLocalClassifier(), nil, cfg, logger, metrics)
	store := services.NewStoreService(memory.NewBlobStore(), messaging.NewNoopPublisher(), cfg, logger, metrics)

	return NewSaveNoteSaga(analyzer, store, logger), store
}

func TestSaveNoteSagaPersistsRefinedDocument(t *testing.T) {
	saga, store := newTestSaga(t)

	result, err := saga.Run(context.Background(), "thinking about  sleep and health", "")
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	require.NotNil(t, result.Analysis)
	require.NotNil(t, result.Refined)

	assert.Equal(t, "thinking about sleep and health.", result.Refined.RefinedContent)
	assert.Equal(t, result.Refined.RefinedContent, result.Document.RefinedContent)
	assert.NotEmpty(t, result.Document.Tags)

	// The stored copy carries the refinement too.
	stored, err := store.GetDocument(result.Document.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Refined.RefinedContent, stored.RefinedContent)
}

func TestSaveNoteSagaRejectsBlankContent(t *testing.T) {
	saga, store := newTestSaga(t)

	_, err := saga.Run(context.Background(), "   ", "")
	require.Error(t, err)

	// Nothing half-written survives the failure.
	assert.Empty(t, store.Documents())
}

func TestSagaCompensatesInReverseOrder(t *testing.T) {
	var order []string

	saga := New("test", zap.NewNop()).
		AddStep(Step{
			Name:    "first",
			Execute: func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				order = append(order, "first")
				return nil
			},
		}).
		AddStep(Step{
			Name:    "second",
			Execute: func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				order = append(order, "second")
				return nil
			},
		}).
		AddStep(Step{
			Name:    "boom",
			Execute: func(ctx context.Context) error { return context.DeadlineExceeded },
		})

	err := saga.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"second", "first"}, order)
	assert.Equal(t, StateCompensated, saga.State())
}
