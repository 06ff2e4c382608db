package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"

	"mindflow-backend/domain/events"
	pkgerrors "mindflow-backend/pkg/errors"
)

// eventBatchLimit is the PutEvents API maximum per request.
const eventBatchLimit = 10

// EventBridgePublisher publishes domain events to an EventBridge bus.
type EventBridgePublisher struct {
	client  *eventbridge.Client
	busName string
	source  string
	logger  *zap.Logger
}

// NewEventBridgePublisher creates an EventBridge-backed publisher.
func NewEventBridgePublisher(client *eventbridge.Client, busName, source string, logger *zap.Logger) *EventBridgePublisher {
	return &EventBridgePublisher{
		client:  client,
		busName: busName,
		source:  source,
		logger:  logger,
	}
}

// Publish implements ports.EventPublisher.
func (p *EventBridgePublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return p.PublishBatch(ctx, []events.DomainEvent{event})
}

// PublishBatch implements ports.EventPublisher, chunking to the PutEvents
// API limit.
func (p *EventBridgePublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	for start := 0; start < len(batch); start += eventBatchLimit {
		end := start + eventBatchLimit
		if end > len(batch) {
			end = len(batch)
		}
		if err := p.putEvents(ctx, batch[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (p *EventBridgePublisher) putEvents(ctx context.Context, batch []events.DomainEvent) error {
	entries := make([]types.PutEventsRequestEntry, 0, len(batch))
	for _, event := range batch {
		detail, err := json.Marshal(event)
		if err != nil {
			return pkgerrors.NewInternalError(fmt.Sprintf("serializing event %s", event.GetEventType())).WithCause(err)
		}
		entries = append(entries, types.PutEventsRequestEntry{
			EventBusName: aws.String(p.busName),
			Source:       aws.String(p.source),
			DetailType:   aws.String(event.GetEventType()),
			Detail:       aws.String(string(detail)),
		})
	}

	output, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{Entries: entries})
	if err != nil {
		return pkgerrors.NewExternalError("eventbridge", err)
	}
	if output.FailedEntryCount > 0 {
		p.logger.Warn("some events failed to publish",
			zap.Int32("failed", output.FailedEntryCount),
			zap.Int("total", len(entries)))
		return pkgerrors.NewExternalError("eventbridge",
			fmt.Errorf("%d of %d events rejected", output.FailedEntryCount, len(entries)))
	}
	return nil
}
