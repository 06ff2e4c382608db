package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindflow-backend/domain/config"
	"mindflow-backend/pkg/observability"
)

func newTestAnalyzer(cfg *config.DomainConfig) *AnalyzerService {
	return NewAnalyzerService(NewLocalClassifier(), nil, cfg, zap.NewNop(), observability.NewCollector("mindflow"))
}

func TestAnalyze(t *testing.T) {
	analyzer := newTestAnalyzer(nil)

	output, err := analyzer.Analyze(context.Background(), "I keep struggling to fall asleep and it's affecting my workouts")

	require.NoError(t, err)
	assert.NotEmpty(t, output.Results)
	assert.Equal(t, "Health", output.Results[0].Path[0])
	assert.NotEmpty(t, output.Tags)
	assert.NotEmpty(t, output.Keywords)
}

func TestAnalyze_AlwaysProducesAResult(t *testing.T) {
	analyzer := newTestAnalyzer(nil)

	output, err := analyzer.Analyze(context.Background(), "zzz")

	require.NoError(t, err)
	require.NotEmpty(t, output.Results)
	assert.NotEmpty(t, output.Tags)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	cfg := config.DefaultDomainConfig()
	cfg.AnalysisDelay = 5 * time.Second
	analyzer := newTestAnalyzer(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.Analyze(ctx, "anything")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRefineRegeneratesTags(t *testing.T) {
	analyzer := newTestAnalyzer(nil)

	output, err := analyzer.Refine(context.Background(), "thinking about  sleep and health")

	require.NoError(t, err)
	assert.Equal(t, "thinking about  sleep and health", output.OriginalContent)
	assert.Equal(t, "thinking about sleep and health.", output.RefinedContent)
	assert.Contains(t, output.Tags, "sleep")
	assert.Contains(t, output.Tags, "health")
	assert.NotEmpty(t, output.TaxonomyPaths)
}
