package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	wmmiddleware "github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/garsue/watermillzap"

	"usersvc/internal/config"
	"usersvc/internal/logging"
)

// Router consumes the users topic and writes an audit log line per event.
type Router struct {
	router *message.Router
}

func NewRouter(cfg config.KafkaConfig, baseLogger logging.Logger) (*Router, error) {
	if !cfg.Enabled {
		return &Router{}, nil
	}

	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	subscriber, err := kafka.NewSubscriber(kafka.SubscriberConfig{
		Brokers:       cfg.Brokers,
		Unmarshaler:   kafka.DefaultMarshaler{},
		ConsumerGroup: cfg.GroupID,
		InitializeTopicDetails: &sarama.TopicDetail{
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
		NackResendSleep:     5 * time.Second,
		ReconnectRetrySleep: 10 * time.Second,
	}, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create kafka subscriber: %w", err)
	}

	return newRouter(subscriber, usersTopic(cfg.TopicPrefix), baseLogger)
}

func newRouter(subscriber message.Subscriber, topic string, baseLogger logging.Logger) (*Router, error) {
	wmlogger := watermillzap.NewLogger(logging.AsZap(baseLogger))

	router, err := message.NewRouter(message.RouterConfig{}, wmlogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}
	router.AddMiddleware(wmmiddleware.Recoverer)

	router.AddNoPublisherHandler(
		"user-events-audit",
		topic,
		subscriber,
		auditHandler(baseLogger.With("component", "user_events_audit", "topic", topic)),
	)

	return &Router{router: router}, nil
}

// auditHandler acks every message. Undecodable ones are logged and dropped
// so they are not redelivered forever.
func auditHandler(logger logging.Logger) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		env, err := decodeEnvelope(msg.Payload)
		if err != nil {
			logger.Warn("dropping malformed user event", "uuid", msg.UUID, "error", err)
			return nil
		}

		logger.Info("user event",
			"type", env.Type,
			"message_id", env.MessageID,
			"correlation_id", env.CorrelationID,
			"occurred_at", env.OccurredAt,
			"payload", string(env.Payload),
		)
		return nil
	}
}

// Run blocks until ctx is cancelled or the router is closed.
func (r *Router) Run(ctx context.Context) error {
	if r.router == nil {
		return nil
	}
	return r.router.Run(ctx)
}

// Running is closed once handlers are subscribed. It is nil when Kafka is disabled.
func (r *Router) Running() chan struct{} {
	if r.router == nil {
		return nil
	}
	return r.router.Running()
}

func (r *Router) Close(ctx context.Context) error {
	if r.router == nil {
		return nil
	}
	return r.router.Close()
}
