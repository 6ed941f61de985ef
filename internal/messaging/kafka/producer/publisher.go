package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafkago.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type publisher struct {
	writer MessageWriter
}

func NewPublisher(writer MessageWriter) kafka.Publisher {
	return &publisher{writer: writer}
}

func (p *publisher) Publish(ctx context.Context, msg kafka.Message) error {
	payload, err := json.Marshal(msg.Payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", msg.EventType, err)
	}

	headers := []kafkago.Header{
		{Key: "event_type", Value: []byte(msg.EventType)},
		{Key: "aggregate_type", Value: []byte(msg.AggregateType)},
	}
	if msg.RequestID != "" {
		headers = append(headers, kafkago.Header{Key: "request_id", Value: []byte(msg.RequestID)})
	}

	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic:   msg.Topic,
		Key:     []byte(msg.Key),
		Value:   payload,
		Headers: headers,
	})
}
