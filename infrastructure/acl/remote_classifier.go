// Package acl contains anti-corruption adapters for external services.
package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"mindflow-backend/application/ports"
	"mindflow-backend/domain/analysis"
)

// RemoteClassifier calls an external classification model over HTTP, guarded
// by a circuit breaker. While the circuit is open, or when a call fails,
// classification falls back to the local rule engine so analysis never
// becomes unavailable.
type RemoteClassifier struct {
	endpoint string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	fallback ports.Classifier
	logger   *zap.Logger
}

// NewRemoteClassifier creates a remote classifier with the given fallback.
func NewRemoteClassifier(endpoint string, timeout time.Duration, fallback ports.Classifier, logger *zap.Logger) *RemoteClassifier {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "remote-classifier",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("classifier circuit state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})

	return &RemoteClassifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		breaker:  breaker,
		fallback: fallback,
		logger:   logger,
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Results []analysis.Result `json:"results"`
}

// Classify implements ports.Classifier.
func (c *RemoteClassifier) Classify(ctx context.Context, text string) ([]analysis.Result, error) {
	value, err := c.breaker.Execute(func() (interface{}, error) {
		return c.call(ctx, text)
	})
	if err != nil {
		c.logger.Warn("remote classification failed, using local rules", zap.Error(err))
		return c.fallback.Classify(ctx, text)
	}
	return value.([]analysis.Result), nil
}

func (c *RemoteClassifier) call(ctx context.Context, text string) ([]analysis.Result, error) {
	payload, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var decoded classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding classifier response: %w", err)
	}
	if len(decoded.Results) == 0 {
		// An empty remote answer is worse than the local rules; treat it as
		// a failure so the fallback produces something.
		return nil, fmt.Errorf("classifier returned no results")
	}
	return decoded.Results, nil
}
