package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConsumer() *Consumer {
	return &Consumer{logger: zap.NewNop(), backoff: time.Millisecond, maxBackoff: 2 * time.Millisecond}
}

func TestNewProducerWritesAsync(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "dashboard-events")
	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)

	assert.True(t, w.Async)
	assert.Equal(t, PublishBatchTimeout, w.BatchTimeout)
	assert.NotNil(t, w.Completion)
	require.NoError(t, p.Close())
}

func TestDeliveryLoggerIgnoresSuccess(t *testing.T) {
	report := deliveryLogger(zap.NewNop())
	assert.NotPanics(t, func() {
		report([]kafka.Message{{Key: []byte("stocks-s1")}}, nil)
		report([]kafka.Message{{Key: []byte("stocks-s1")}}, errors.New("leader not available"))
	})
}

func TestConsumerRetriesUntilHandlerSucceeds(t *testing.T) {
	calls := 0
	handler := func(ctx context.Context, msg kafka.Message) error {
		calls++
		if calls < 3 {
			return errors.New("db down")
		}
		return nil
	}

	err := testConsumer().process(context.Background(), handler, kafka.Message{Offset: 7})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestConsumerSkipsMalformedEvent(t *testing.T) {
	calls := 0
	eh := NewEventHandler()
	handler := func(ctx context.Context, msg kafka.Message) error {
		calls++
		return eh.HandleMessage(ctx, msg)
	}

	err := testConsumer().process(context.Background(), handler, kafka.Message{Value: []byte("not json")})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestConsumerStopsRetryingWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	handler := func(context.Context, kafka.Message) error {
		cancel()
		return errors.New("db down")
	}

	err := testConsumer().process(ctx, handler, kafka.Message{})

	assert.ErrorIs(t, err, context.Canceled)
}
