package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"mindflow-backend/application/ports"
	"mindflow-backend/domain/analysis"
	"mindflow-backend/domain/config"
	"mindflow-backend/pkg/observability"
)

// AnalysisOutput is the combined result of one analyze call.
type AnalysisOutput struct {
	Results  []analysis.Result `json:"results"`
	Tags     []string          `json:"tags"`
	Topics   []string          `json:"topics"`
	Keywords []string          `json:"keywords"`
}

// RefineOutput is the result of one refine call. TaxonomyPaths carry the
// classification paths of the refined text so consumers can file it without
// a second analyze round trip.
type RefineOutput struct {
	OriginalContent string     `json:"originalText"`
	RefinedContent  string     `json:"refinedText"`
	Tags            []string   `json:"tags"`
	TaxonomyPaths   [][]string `json:"taxonomyPaths"`
}

// AnalyzerService runs classification, tag generation, and text refinement
// over raw text. Classification goes through the Classifier port so the
// rule engine can be swapped for a remote model; everything else is local
// and deterministic.
type AnalyzerService struct {
	classifier ports.Classifier
	cache      ports.Cache
	cfg        *config.DomainConfig
	logger     *zap.Logger
	metrics    *observability.Collector
}

// analysisCacheTTL bounds how long a memoized analysis stays valid, in
// seconds. Results are deterministic for a given text, so the TTL only
// limits memory growth.
const analysisCacheTTL = 300

// NewAnalyzerService creates a new analyzer service. cache may be nil to
// disable memoization.
func NewAnalyzerService(
	classifier ports.Classifier,
	cache ports.Cache,
	cfg *config.DomainConfig,
	logger *zap.Logger,
	metrics *observability.Collector,
) *AnalyzerService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &AnalyzerService{
		classifier: classifier,
		cache:      cache,
		cfg:        cfg,
		logger:     logger,
		metrics:    metrics,
	}
}

// Analyze classifies the text and generates its tags. The call is modeled
// as a single-shot asynchronous operation: callers that go away simply drop
// the result, no partial state is written here.
func (s *AnalyzerService) Analyze(ctx context.Context, text string) (*AnalysisOutput, error) {
	cacheKey := analysisCacheKey(text)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			if output, ok := cached.(*AnalysisOutput); ok {
				return output, nil
			}
		}
	}

	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	results, err := s.classifier.Classify(ctx, text)
	if err != nil {
		s.logger.Warn("classification failed", zap.Error(err))
		return nil, err
	}

	output := &AnalysisOutput{
		Results:  results,
		Tags:     analysis.GenerateTags(text),
		Topics:   analysis.MatchTopics(text),
		Keywords: analysis.ExtractKeywords(text),
	}

	s.metrics.AnalysesRun.Inc()
	s.logger.Debug("analysis complete",
		zap.Int("results", len(output.Results)),
		zap.Strings("tags", output.Tags))

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, output, analysisCacheTTL); err != nil {
			s.logger.Debug("caching analysis", zap.Error(err))
		}
	}

	return output, nil
}

func analysisCacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "analysis:" + hex.EncodeToString(sum[:])
}

// Refine normalizes the text and regenerates tags for the refined form.
func (s *AnalyzerService) Refine(ctx context.Context, text string) (*RefineOutput, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	refined := analysis.Refine(text)
	paths := make([][]string, 0)
	for _, result := range analysis.Classify(refined) {
		paths = append(paths, result.Path)
	}

	return &RefineOutput{
		OriginalContent: text,
		RefinedContent:  refined,
		Tags:            analysis.GenerateTags(refined),
		TaxonomyPaths:   paths,
	}, nil
}

// simulateLatency waits for the configured analysis delay, honoring
// cancellation. The delay is zero outside interactive demos.
func (s *AnalyzerService) simulateLatency(ctx context.Context) error {
	if s.cfg.AnalysisDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.cfg.AnalysisDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LocalClassifier implements the Classifier port with the in-process rule
// engine.
type LocalClassifier struct{}

// NewLocalClassifier creates the rule-based classifier.
func NewLocalClassifier() *LocalClassifier {
	return &LocalClassifier{}
}

// Classify runs the rule tables over the text.
func (c *LocalClassifier) Classify(ctx context.Context, text string) ([]analysis.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return analysis.Classify(text), nil
}
