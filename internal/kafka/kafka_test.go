package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingEventHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var got []BookingEvent
	handler := BookingEventHandler(logger, func(_ context.Context, e BookingEvent) error {
		got = append(got, e)
		return nil
	})

	payload, err := json.Marshal(BookingEvent{Type: EventBookingRequested, Reference: "ref-1", Email: "a@b.c"})
	require.NoError(t, err)

	require.NoError(t, handler(context.Background(), kafka.Message{Value: payload}))
	require.NoError(t, handler(context.Background(), kafka.Message{Value: []byte("{broken")}))

	require.Len(t, got, 1)
	assert.Equal(t, "ref-1", got[0].Reference)
}

func TestBookingEventHandler_PropagatesErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := BookingEventHandler(logger, func(context.Context, BookingEvent) error {
		return errors.New("smtp down")
	})

	err := handler(context.Background(), kafka.Message{Value: []byte(`{"type":"booking_requested"}`)})
	assert.EqualError(t, err, "smtp down")
}

func TestProducer_CheckConnectionNoBrokers(t *testing.T) {
	p := NewProducer(nil, nil)
	assert.Error(t, p.CheckConnection(context.Background()))
	assert.NoError(t, p.Close())
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}
