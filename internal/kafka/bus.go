package kafka

import "context"

type Bus interface {
	Publish(ctx context.Context, topic string, msgType string, payload any) error
}

// noopBus is used when Kafka is disabled.
type noopBus struct{}

func (noopBus) Publish(ctx context.Context, topic string, msgType string, payload any) error {
	return nil
}
