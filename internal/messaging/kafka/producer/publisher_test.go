package producer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/vivek068790/Employee-Register-App/internal/events"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafkago.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	pub := producer.NewPublisher(w)

	err := pub.Publish(context.Background(), kafka.Message{
		Topic:         events.EmployeeLifecycleTopic,
		Key:           "emp-1",
		EventType:     events.EmployeeCreated,
		AggregateType: "employee",
		RequestID:     "rid-9",
		Payload:       events.EmployeeLifecycleEvent{EventType: events.EmployeeCreated, EmployeeID: "emp-1"},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, events.EmployeeLifecycleTopic, msg.Topic)
	assert.Equal(t, "emp-1", string(msg.Key))
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, events.EmployeeCreated, string(msg.Headers[0].Value))
	assert.Equal(t, "rid-9", string(msg.Headers[2].Value))

	var decoded events.EmployeeLifecycleEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "emp-1", decoded.EmployeeID)
}

func TestPublisher_WriterError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker down")}
	err := producer.NewPublisher(w).Publish(context.Background(), kafka.Message{Topic: "t", Payload: struct{}{}})
	assert.EqualError(t, err, "broker down")
}

func TestPublisher_MarshalError(t *testing.T) {
	w := &recordingWriter{}
	err := producer.NewPublisher(w).Publish(context.Background(), kafka.Message{Topic: "t", EventType: "x", Payload: make(chan int)})
	assert.ErrorContains(t, err, "marshal x event")
	assert.Empty(t, w.msgs)
}
