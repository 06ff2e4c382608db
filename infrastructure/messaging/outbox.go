package messaging

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"mindflow-backend/application/ports"
	"mindflow-backend/domain/events"
)

// outboxCap bounds the retry buffer; beyond it the oldest events are
// dropped, favoring fresh events over a complete history.
const outboxCap = 1000

// OutboxPublisher wraps another publisher with an in-process retry buffer.
// Events that fail to publish are parked and retried on a ticker, so a
// transient broker outage doesn't lose notifications or block callers.
type OutboxPublisher struct {
	inner    ports.EventPublisher
	logger   *zap.Logger
	interval time.Duration

	mu      sync.Mutex
	pending []events.DomainEvent

	stop chan struct{}
	once sync.Once
}

// NewOutboxPublisher wraps a publisher with buffered retries and starts the
// background flusher.
func NewOutboxPublisher(inner ports.EventPublisher, interval time.Duration, logger *zap.Logger) *OutboxPublisher {
	p := &OutboxPublisher{
		inner:    inner,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
	go p.flushLoop()
	return p
}

// Publish implements ports.EventPublisher.
func (p *OutboxPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch implements ports.EventPublisher. Failed events are buffered
// for retry and nil is returned; callers treat publishing as best-effort.
func (p *OutboxPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	if err := p.inner.PublishBatch(ctx, batch); err != nil {
		p.logger.Warn("buffering events after publish failure",
			zap.Int("count", len(batch)), zap.Error(err))
		p.park(batch)
	}
	return nil
}

// Close stops the background flusher and attempts one final flush.
func (p *OutboxPublisher) Close() {
	p.once.Do(func() { close(p.stop) })
	p.flush()
}

func (p *OutboxPublisher) park(batch []events.DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.pending = append(p.pending, batch...)
	if overflow := len(p.pending) - outboxCap; overflow > 0 {
		p.pending = p.pending[overflow:]
	}
}

func (p *OutboxPublisher) flushLoop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.flush()
		}
	}
}

func (p *OutboxPublisher) flush() {
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		return
	}
	batch := p.pending
	p.pending = nil
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.inner.PublishBatch(ctx, batch); err != nil {
		p.logger.Warn("outbox flush failed, re-buffering",
			zap.Int("count", len(batch)), zap.Error(err))
		p.park(batch)
		return
	}
	p.logger.Info("flushed buffered events", zap.Int("count", len(batch)))
}
