package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"warehouse-dashboard/internal/broker"
	"warehouse-dashboard/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) RecordActivity(ctx context.Context, entry *models.ActivityEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

// replaySource hands every queued message to the handler once.
type replaySource struct {
	messages []kafka.Message
	errs     []error
	closed   bool
}

func (r *replaySource) StartConsuming(ctx context.Context, handler broker.MessageHandler) error {
	for _, msg := range r.messages {
		r.errs = append(r.errs, handler(ctx, msg))
	}
	return nil
}

func (r *replaySource) Close() error {
	r.closed = true
	return nil
}

func mutationMessage(t *testing.T, event models.ResourceMutatedEvent) kafka.Message {
	t.Helper()
	event.EventType = models.EventTypeResourceMutated
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(event.Resource), Value: body}
}

func TestActivityWorkerRecordsEvents(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	event := models.ResourceMutatedEvent{
		BaseEvent:  models.BaseEvent{EventID: "e1", Timestamp: at},
		Resource:   models.ResourceStocks,
		Mutation:   models.MutationUpdate,
		ResourceID: "s1",
		Actor:      "ops@example.com",
		Summary:    "quantity 4, low-stock",
	}

	store := new(mockStore)
	store.On("RecordActivity", mock.Anything, mock.MatchedBy(func(e *models.ActivityEntry) bool {
		return e.EventID == "e1" && e.Resource == models.ResourceStocks && e.Actor == "ops@example.com" && e.OccurredAt.Equal(at)
	})).Return(true, nil)

	source := &replaySource{messages: []kafka.Message{mutationMessage(t, event)}}
	w := NewActivityWorker(source, store)

	require.NoError(t, w.Start(context.Background()))
	assert.Equal(t, []error{nil}, source.errs)
	store.AssertExpectations(t)

	require.NoError(t, w.Stop())
	assert.True(t, source.closed)
}

func TestActivityWorkerDuplicateIsNotAnError(t *testing.T) {
	store := new(mockStore)
	store.On("RecordActivity", mock.Anything, mock.Anything).Return(false, nil)

	w := NewActivityWorker(&replaySource{}, store)
	err := w.HandleResourceMutated(context.Background(), &models.ResourceMutatedEvent{BaseEvent: models.BaseEvent{EventID: "e1"}})

	assert.NoError(t, err)
	store.AssertNumberOfCalls(t, "RecordActivity", 1)
}

func TestActivityWorkerReturnsStoreFailure(t *testing.T) {
	store := new(mockStore)
	store.On("RecordActivity", mock.Anything, mock.Anything).Return(false, errors.New("db down"))

	source := &replaySource{messages: []kafka.Message{
		mutationMessage(t, models.ResourceMutatedEvent{BaseEvent: models.BaseEvent{EventID: "e2"}, Resource: models.ResourceProducts}),
	}}
	w := NewActivityWorker(source, store)

	require.NoError(t, w.Start(context.Background()))
	require.Len(t, source.errs, 1)
	assert.EqualError(t, source.errs[0], "db down")
}

func TestActivityWorkerRejectsMalformedEvent(t *testing.T) {
	store := new(mockStore)
	source := &replaySource{messages: []kafka.Message{{Value: []byte("{")}}}

	require.NoError(t, NewActivityWorker(source, store).Start(context.Background()))

	require.Len(t, source.errs, 1)
	assert.ErrorIs(t, source.errs[0], broker.ErrMalformedEvent)
	store.AssertNotCalled(t, "RecordActivity", mock.Anything, mock.Anything)
}

func TestActivityWorkerIgnoresOtherEvents(t *testing.T) {
	store := new(mockStore)
	body, err := json.Marshal(models.BaseEvent{EventID: "x", EventType: "something.else"})
	require.NoError(t, err)

	source := &replaySource{messages: []kafka.Message{{Value: body}}}
	require.NoError(t, NewActivityWorker(source, store).Start(context.Background()))

	assert.Equal(t, []error{nil}, source.errs)
	store.AssertNotCalled(t, "RecordActivity", mock.Anything, mock.Anything)
}
