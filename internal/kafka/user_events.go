package kafka

import (
	"context"
	"fmt"

	appuser "usersvc/internal/app/user"
	"usersvc/internal/config"
	"usersvc/internal/logging"
)

const (
	UserCreatedType = "UserCreated"
	UserUpdatedType = "UserUpdated"
	UserDeletedType = "UserDeleted"
)

func usersTopic(prefix string) string {
	return prefix + "users"
}

type userEvents struct {
	bus    Bus
	topic  string
	logger logging.Logger
}

func NewUserEvents(bus Bus, cfg config.KafkaConfig, logger logging.Logger) appuser.Events {
	return &userEvents{
		bus:    bus,
		topic:  usersTopic(cfg.TopicPrefix),
		logger: logger.With("component", "user_events"),
	}
}

func (e *userEvents) UserCreated(ctx context.Context, u *appuser.UserDto) error {
	if err := e.bus.Publish(ctx, e.topic, UserCreatedType, u); err != nil {
		return fmt.Errorf("publish %s: %w", UserCreatedType, err)
	}
	return nil
}

func (e *userEvents) UserUpdated(ctx context.Context, u *appuser.UserDto) error {
	if err := e.bus.Publish(ctx, e.topic, UserUpdatedType, u); err != nil {
		return fmt.Errorf("publish %s: %w", UserUpdatedType, err)
	}
	return nil
}

func (e *userEvents) UserDeleted(ctx context.Context, id int64) error {
	payload := struct {
		ID int64 `json:"id"`
	}{ID: id}

	if err := e.bus.Publish(ctx, e.topic, UserDeletedType, payload); err != nil {
		return fmt.Errorf("publish %s: %w", UserDeletedType, err)
	}
	return nil
}
