package worker

import (
	"context"

	"warehouse-dashboard/internal/broker"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

// MessageSource is the consuming side of the event topic.
type MessageSource interface {
	StartConsuming(ctx context.Context, handler broker.MessageHandler) error
	Close() error
}

// ActivityStore persists activity rows. RecordActivity reports false when
// the event was already recorded.
type ActivityStore interface {
	RecordActivity(ctx context.Context, entry *models.ActivityEntry) (bool, error)
}

// ActivityWorker turns resource.mutated events into activity log rows
type ActivityWorker struct {
	consumer     MessageSource
	eventHandler *broker.EventHandler
	store        ActivityStore
	logger       *zap.Logger
}

// NewActivityWorker creates a new activity worker
func NewActivityWorker(consumer MessageSource, store ActivityStore) *ActivityWorker {
	w := &ActivityWorker{
		consumer:     consumer,
		eventHandler: broker.NewEventHandler(),
		store:        store,
		logger:       util.Component("worker.activity"),
	}
	w.eventHandler.OnResourceMutated(w.HandleResourceMutated)
	return w
}

// Start starts the worker and blocks until ctx is done
func (w *ActivityWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting activity worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *ActivityWorker) Stop() error {
	w.logger.Info("Stopping activity worker")
	return w.consumer.Close()
}

// HandleResourceMutated records one event. Redelivered events are skipped by
// the store, so an error here only means the row could not be written.
func (w *ActivityWorker) HandleResourceMutated(ctx context.Context, event *models.ResourceMutatedEvent) error {
	ctx, span := util.StartSpan(ctx, "ActivityWorker.HandleResourceMutated")
	defer span.End()

	entry := models.ActivityEntryFromEvent(*event)
	inserted, err := w.store.RecordActivity(ctx, &entry)
	if err != nil {
		span.RecordError(err)
		return err
	}
	if !inserted {
		w.logger.Debug("Event already recorded", zap.String("event_id", event.EventID))
		return nil
	}

	util.ActivityRecordedTotal.Inc()
	w.logger.Info("Activity recorded",
		zap.String("resource", event.Resource),
		zap.String("mutation", event.Mutation),
		zap.String("resource_id", event.ResourceID),
		zap.String("actor", event.Actor))
	return nil
}
