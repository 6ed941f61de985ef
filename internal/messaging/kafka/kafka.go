package kafka

import "context"

// Message is one domain event bound for a topic. Payload is JSON encoded by
// the publisher.
type Message struct {
	Topic         string
	Key           string
	EventType     string
	AggregateType string
	RequestID     string
	Payload       any
}

//go:generate mockgen -source=kafka.go -destination=mock/publisher_mock.go -package=mock

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
}

type noopPublisher struct{}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Message) error {
	return nil
}
