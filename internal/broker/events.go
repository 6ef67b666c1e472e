package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrMalformedEvent marks a message that can never be handled. The consumer
// commits it instead of retrying.
var ErrMalformedEvent = errors.New("malformed event")

// Publisher is implemented by anything that can ship an event under a key.
type Publisher interface {
	PublishEvent(ctx context.Context, key string, event interface{}) error
}

// EventPublisher handles publishing dashboard events
type EventPublisher struct {
	producer Publisher
	logger   *zap.Logger
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer Publisher) *EventPublisher {
	return &EventPublisher{producer: producer, logger: util.Component("broker.events")}
}

// PublishResourceMutated stamps and publishes a mutation event. Events of one
// resource row share a partition key so they stay ordered.
func (ep *EventPublisher) PublishResourceMutated(ctx context.Context, event *models.ResourceMutatedEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}
	event.EventType = models.EventTypeResourceMutated
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	key := fmt.Sprintf("%s-%s", event.Resource, event.ResourceID)
	if err := ep.producer.PublishEvent(ctx, key, event); err != nil {
		ep.logger.Warn("Failed to publish mutation event",
			zap.String("resource", event.Resource),
			zap.String("mutation", event.Mutation),
			zap.Error(err))
		return err
	}
	return nil
}

// EventHandler handles incoming events
type EventHandler struct {
	onResourceMutated func(context.Context, *models.ResourceMutatedEvent) error
	logger            *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{logger: util.Component("broker.handler")}
}

// OnResourceMutated registers a handler for resource.mutated events
func (eh *EventHandler) OnResourceMutated(handler func(context.Context, *models.ResourceMutatedEvent) error) {
	eh.onResourceMutated = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("%w: base event: %v", ErrMalformedEvent, err)
	}

	eh.logger.Debug("Handling event",
		zap.String("type", baseEvent.EventType),
		zap.String("id", baseEvent.EventID))

	switch baseEvent.EventType {
	case models.EventTypeResourceMutated:
		if eh.onResourceMutated != nil {
			var event models.ResourceMutatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("%w: ResourceMutated event: %v", ErrMalformedEvent, err)
			}
			return eh.onResourceMutated(ctx, &event)
		}

	default:
		eh.logger.Warn("Unhandled event type", zap.String("type", baseEvent.EventType))
	}

	return nil
}
