// Package messaging implements the event publisher port.
package messaging

import (
	"context"

	"mindflow-backend/domain/events"
)

// NoopPublisher discards all events. Used when event publishing is
// disabled.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops everything.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish implements ports.EventPublisher.
func (p *NoopPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return nil
}

// PublishBatch implements ports.EventPublisher.
func (p *NoopPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	return nil
}
