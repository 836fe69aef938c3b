package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/garsue/watermillzap"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"usersvc/internal/config"
	"usersvc/internal/logging"
)

type watermillBus struct {
	publisher message.Publisher
	logger    logging.Logger
	now       func() time.Time
}

// NewBus returns a Kafka-backed bus, or a no-op bus when Kafka is disabled.
// The returned func closes the publisher.
func NewBus(cfg config.KafkaConfig, baseLogger logging.Logger) (Bus, func(ctx context.Context) error, error) {
	if !cfg.Enabled {
		return noopBus{}, func(ctx context.Context) error { return nil }, nil
	}

	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	saramaCfg := kafka.DefaultSaramaSyncPublisherConfig()
	saramaCfg.ClientID = cfg.ClientID
	saramaCfg.Producer.RequiredAcks = sarama.WaitForLocal

	publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
		Brokers:               cfg.Brokers,
		Marshaler:             kafka.DefaultMarshaler{},
		OverwriteSaramaConfig: saramaCfg,
	}, wmlogger)
	if err != nil {
		return nil, nil, fmt.Errorf("create kafka publisher: %w", err)
	}

	closeFn := func(ctx context.Context) error {
		return publisher.Close()
	}

	return newWatermillBus(publisher, baseLogger), closeFn, nil
}

func newWatermillBus(publisher message.Publisher, logger logging.Logger) *watermillBus {
	return &watermillBus{
		publisher: publisher,
		logger:    logger.With("component", "kafka_bus"),
		now:       time.Now,
	}
}

func (b *watermillBus) Publish(ctx context.Context, topic string, msgType string, payload any) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	env := Envelope{
		MessageID:     uuid.NewString(),
		CorrelationID: middleware.GetReqID(ctx),
		Type:          msgType,
		OccurredAt:    b.now().UTC(),
		Payload:       payloadBytes,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := message.NewMessage(env.MessageID, body)
	msg.SetContext(ctx)
	if env.CorrelationID != "" {
		msg.Metadata.Set(metadataCorrelationID, env.CorrelationID)
	}

	if err := b.publisher.Publish(topic, msg); err != nil {
		b.logger.Error("failed to publish kafka message",
			"topic", topic,
			"type", msgType,
			"error", err,
		)
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}
