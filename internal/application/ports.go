package application

//go:generate mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks

import (
	"context"

	"github.com/shareit-hub/service-shareit/internal/platform/kafka"
)

// Transactor runs fn inside one database transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher publishes CloudEvents to a topic.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}
